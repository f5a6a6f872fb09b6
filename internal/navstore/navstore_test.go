package navstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundLens/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func valueStrings(s model.PriceSeries) []string {
	out := make([]string, s.Len())
	for i, p := range s.Points {
		out[i] = p.Date.Format(model.DateLayout) + "=" + p.Value.String()
	}
	return out
}

func newSQLite(t *testing.T) *SQLiteSource {
	t.Helper()
	src, err := NewSQLiteSource(filepath.Join(t.TempDir(), "funds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })

	stmts := []string{
		`INSERT INTO funds (fund_code, fund_name, fund_type, risk_level) VALUES ('110011', '易方达中小盘', '混合型', 'R3')`,
		`INSERT INTO funds (fund_code, fund_name) VALUES ('000001', '华夏成长')`,
		`INSERT INTO prices (fund_code, net_value, date) VALUES ('110011', '1.2345', '2024-01-03')`,
		`INSERT INTO prices (fund_code, net_value, date) VALUES ('110011', '1.2000', '2024-01-02')`,
		`INSERT INTO prices (fund_code, net_value, date) VALUES ('110011', '1.2500', '2024-01-05')`,
		`INSERT INTO prices (fund_code, net_value, date) VALUES ('000001', '0.9870', '2024-01-02')`,
	}
	for _, stmt := range stmts {
		_, err := src.db.Exec(stmt)
		require.NoError(t, err)
	}
	return src
}

func TestSQLiteSource_LoadSeries(t *testing.T) {
	src := newSQLite(t)
	ctx := context.Background()

	s, err := src.LoadSeries(ctx, "110011", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "110011", s.FundCode)
	assert.Equal(t, []string{"2024-01-02=1.2", "2024-01-03=1.2345", "2024-01-05=1.25"}, valueStrings(s))
	assert.NoError(t, s.Validate())

	s, err = src.LoadSeries(ctx, "110011", day("2024-01-03"), day("2024-01-04"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-03=1.2345"}, valueStrings(s))
}

func TestSQLiteSource_NotFound(t *testing.T) {
	src := newSQLite(t)
	_, err := src.LoadSeries(context.Background(), "999999", time.Time{}, time.Time{})
	assert.True(t, errors.Is(err, ErrFundNotFound), "got %v", err)

	_, err = src.LoadProfile(context.Background(), "999999")
	assert.True(t, errors.Is(err, ErrFundNotFound), "got %v", err)

	_, err = src.LoadSeries(context.Background(), "../etc", time.Time{}, time.Time{})
	assert.True(t, errors.Is(err, ErrInvalidCode), "got %v", err)
}

func TestSQLiteSource_LoadProfile(t *testing.T) {
	src := newSQLite(t)

	p, err := src.LoadProfile(context.Background(), "110011")
	require.NoError(t, err)
	assert.Equal(t, model.FundProfile{Code: "110011", Name: "易方达中小盘", Type: "混合型", RiskLevel: "R3"}, *p)

	p, err = src.LoadProfile(context.Background(), "000001")
	require.NoError(t, err)
	assert.Equal(t, "华夏成长", p.Name)
	assert.Empty(t, p.Type)
}

func TestSQLiteSource_CanceledContext(t *testing.T) {
	src := newSQLite(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := src.LoadSeries(ctx, "110011", time.Time{}, time.Time{})
	assert.Error(t, err)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCSVSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "110011.csv", "date,net_value\n2024-01-03,1.2345\n2024-01-02,1.2000\n2024-01-03,1.2400\n2024-01-05, 1.2500\n")
	writeFile(t, dir, "bad.csv", "date,net_value\n2024-01-02,abc\n")
	writeFile(t, dir, "nohdr.csv", "2024-01-02,1.0\n")
	writeFile(t, dir, profilesFile, "fund_code,fund_name,fund_type,risk_level\n110011,易方达中小盘,混合型,R3\n000001,华夏成长\n")

	src, err := NewCSVSource(dir)
	require.NoError(t, err)
	ctx := context.Background()

	s, err := src.LoadSeries(ctx, "110011", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-02=1.2", "2024-01-03=1.24", "2024-01-05=1.25"}, valueStrings(s),
		"sorted, later duplicate wins")

	s, err = src.LoadSeries(ctx, "110011", day("2024-01-04"), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-05=1.25"}, valueStrings(s))

	_, err = src.LoadSeries(ctx, "000002", time.Time{}, time.Time{})
	assert.True(t, errors.Is(err, ErrFundNotFound))

	_, err = src.LoadSeries(ctx, "bad", time.Time{}, time.Time{})
	assert.ErrorContains(t, err, "bad net value")

	_, err = src.LoadSeries(ctx, "nohdr", time.Time{}, time.Time{})
	assert.ErrorContains(t, err, "header")

	p, err := src.LoadProfile(ctx, "110011")
	require.NoError(t, err)
	assert.Equal(t, "R3", p.RiskLevel)

	p, err = src.LoadProfile(ctx, "000001")
	require.NoError(t, err)
	assert.Equal(t, "华夏成长", p.Name)

	_, err = src.LoadProfile(ctx, "000002")
	assert.True(t, errors.Is(err, ErrFundNotFound))
}

func TestCSVSource_MissingDir(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestMemorySource(t *testing.T) {
	m := NewMemorySource()
	m.PutSeries("A", []model.NavPoint{
		{Date: day("2024-01-02"), Value: decimal.RequireFromString("1.1")},
		{Date: day("2024-01-01"), Value: decimal.RequireFromString("1.0")},
	})
	m.PutProfile(model.FundProfile{Code: "A", Name: "Alpha"})

	s, err := m.LoadSeries(context.Background(), "A", day("2024-01-02"), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-02=1.1"}, valueStrings(s))

	_, err = m.LoadSeries(context.Background(), "B", time.Time{}, time.Time{})
	assert.True(t, errors.Is(err, ErrFundNotFound))

	p, err := m.LoadProfile(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", p.Name)
}

func TestOpen(t *testing.T) {
	src, err := Open(Options{Driver: "csv", CSVDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &CSVSource{}, src)

	src, err = Open(Options{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteSource{}, src)
	src.Close()

	_, err = Open(Options{Driver: "mysql"})
	assert.Error(t, err)
}
