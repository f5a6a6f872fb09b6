package navstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

// profilesFile is the optional fund metadata file inside a CSV directory.
const profilesFile = "funds.csv"

// CSVSource reads <dir>/<code>.csv files with a "date,net_value" header.
// Fund metadata comes from <dir>/funds.csv when present, with the header
// "fund_code,fund_name,fund_type,risk_level".
type CSVSource struct {
	dir string
}

func NewCSVSource(dir string) (*CSVSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open csv dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open csv dir: %s is not a directory", dir)
	}
	return &CSVSource{dir: dir}, nil
}

func (s *CSVSource) LoadSeries(ctx context.Context, code string, from, to time.Time) (model.PriceSeries, error) {
	if err := checkCode(code); err != nil {
		return model.PriceSeries{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.PriceSeries{}, err
	}

	f, err := os.Open(filepath.Join(s.dir, code+".csv"))
	if errors.Is(err, os.ErrNotExist) {
		return model.PriceSeries{}, fmt.Errorf("%w: %s", ErrFundNotFound, code)
	}
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("open %s: %w", code, err)
	}
	defer f.Close()

	points, err := readPoints(f, from, to)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("read %s: %w", code, err)
	}
	if len(points) == 0 {
		return model.PriceSeries{}, fmt.Errorf("%w: %s", ErrFundNotFound, code)
	}
	return model.NewPriceSeries(code, points), nil
}

func readPoints(r io.Reader, from, to time.Time) ([]model.NavPoint, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	dateCol, valueCol, err := columns(header)
	if err != nil {
		return nil, err
	}

	var points []model.NavPoint
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		d, err := parseDate(rec[dateCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad date %q", line, rec[dateCol])
		}
		if !inRange(d, from, to) {
			continue
		}
		v, err := decimal.NewFromString(strings.TrimSpace(rec[valueCol]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad net value %q", line, rec[valueCol])
		}
		points = append(points, model.NavPoint{Date: d, Value: v})
	}
	return points, nil
}

func columns(header []string) (dateCol, valueCol int, err error) {
	dateCol, valueCol = -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "date":
			dateCol = i
		case "net_value":
			valueCol = i
		}
	}
	if dateCol < 0 || valueCol < 0 {
		return 0, 0, fmt.Errorf("header must contain date and net_value, got %v", header)
	}
	return dateCol, valueCol, nil
}

func (s *CSVSource) LoadProfile(ctx context.Context, code string) (*model.FundProfile, error) {
	if err := checkCode(code); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, profilesFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFundNotFound, code)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", profilesFile, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", profilesFile, err)
	}
	for i, rec := range records {
		if i == 0 || len(rec) < 2 || strings.TrimSpace(rec[0]) != code {
			continue
		}
		p := &model.FundProfile{Code: code, Name: strings.TrimSpace(rec[1])}
		if len(rec) > 2 {
			p.Type = strings.TrimSpace(rec[2])
		}
		if len(rec) > 3 {
			p.RiskLevel = strings.TrimSpace(rec[3])
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrFundNotFound, code)
}

func (s *CSVSource) Close() error { return nil }
