// Package navstore reads already-persisted NAV history. It never writes
// prices; the tracker that owns the database does that.
package navstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"FundLens/internal/model"
)

var (
	// ErrFundNotFound is returned when a source holds no rows for a code.
	ErrFundNotFound = errors.New("fund not found")
	// ErrInvalidCode is returned for empty codes or codes that are not
	// plain identifiers.
	ErrInvalidCode = errors.New("invalid fund code")
)

// Source loads NAV history and fund metadata.
type Source interface {
	// LoadSeries returns the ascending, deduplicated history of code with
	// dates in [from, to]. A zero from or to leaves that side open.
	LoadSeries(ctx context.Context, code string, from, to time.Time) (model.PriceSeries, error)
	// LoadProfile returns the descriptive record of code, or ErrFundNotFound.
	LoadProfile(ctx context.Context, code string) (*model.FundProfile, error)
	Close() error
}

// Options selects and configures a Source.
type Options struct {
	Driver     string // "sqlite" or "csv"
	SQLitePath string
	CSVDir     string
}

// Open builds the Source named by opts.Driver.
func Open(opts Options) (Source, error) {
	switch opts.Driver {
	case "sqlite":
		return NewSQLiteSource(opts.SQLitePath)
	case "csv":
		return NewCSVSource(opts.CSVDir)
	default:
		return nil, fmt.Errorf("unknown source driver %q", opts.Driver)
	}
}

func checkCode(code string) error {
	if code == "" || strings.ContainsAny(code, `/\. `) {
		return fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	return nil
}

func inRange(d, from, to time.Time) bool {
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(model.DateLayout) {
		s = s[:len(model.DateLayout)]
	}
	return time.Parse(model.DateLayout, s)
}
