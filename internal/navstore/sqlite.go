package navstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"FundLens/internal/model"
)

// SQLiteSource reads the prices and funds tables of the tracker database.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLiteSource opens (or creates) the database and ensures the tables the
// reader depends on exist.
func NewSQLiteSource(dbPath string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// The tracker keeps writing while we read.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteSource{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteSource) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS funds (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			fund_code  TEXT NOT NULL UNIQUE,
			fund_name  TEXT NOT NULL,
			fund_type  TEXT,
			risk_level TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS prices (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			fund_code TEXT NOT NULL,
			net_value TEXT NOT NULL,
			date      TEXT NOT NULL,
			UNIQUE(fund_code, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_prices_code_date ON prices(fund_code, date)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteSource) LoadSeries(ctx context.Context, code string, from, to time.Time) (model.PriceSeries, error) {
	if err := checkCode(code); err != nil {
		return model.PriceSeries{}, err
	}

	query := `SELECT date, net_value FROM prices WHERE fund_code = ?`
	args := []any{code}
	if !from.IsZero() {
		query += ` AND date >= ?`
		args = append(args, from.Format(model.DateLayout))
	}
	if !to.IsZero() {
		query += ` AND date <= ?`
		args = append(args, to.Format(model.DateLayout))
	}
	query += ` ORDER BY date ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("query prices %s: %w", code, err)
	}
	defer rows.Close()

	var points []model.NavPoint
	for rows.Next() {
		var (
			rawDate any
			value   decimal.Decimal
		)
		if err := rows.Scan(&rawDate, &value); err != nil {
			return model.PriceSeries{}, fmt.Errorf("scan price %s: %w", code, err)
		}
		d, err := scanDate(rawDate)
		if err != nil {
			return model.PriceSeries{}, fmt.Errorf("price %s: %w", code, err)
		}
		points = append(points, model.NavPoint{Date: d, Value: value})
	}
	if err := rows.Err(); err != nil {
		return model.PriceSeries{}, fmt.Errorf("read prices %s: %w", code, err)
	}
	if len(points) == 0 {
		return model.PriceSeries{}, fmt.Errorf("%w: %s", ErrFundNotFound, code)
	}
	return model.NewPriceSeries(code, points), nil
}

func (s *SQLiteSource) LoadProfile(ctx context.Context, code string) (*model.FundProfile, error) {
	if err := checkCode(code); err != nil {
		return nil, err
	}

	var (
		p         = model.FundProfile{Code: code}
		fundType  sql.NullString
		riskLevel sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT fund_name, fund_type, risk_level FROM funds WHERE fund_code = ?`, code,
	).Scan(&p.Name, &fundType, &riskLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrFundNotFound, code)
	}
	if err != nil {
		return nil, fmt.Errorf("query fund %s: %w", code, err)
	}
	p.Type = fundType.String
	p.RiskLevel = riskLevel.String
	return &p, nil
}

func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// scanDate accepts the shapes the driver may hand back for a date column:
// text, or time.Time when the column was declared DATE.
func scanDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		return parseDate(d)
	case []byte:
		return parseDate(string(d))
	default:
		return time.Time{}, fmt.Errorf("unsupported date value %T", v)
	}
}
