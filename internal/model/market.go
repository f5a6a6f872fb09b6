package model

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar layout NAV dates are exchanged in.
const DateLayout = "2006-01-02"

var (
	ErrUnsortedSeries  = errors.New("series dates are not ascending")
	ErrDuplicateDate   = errors.New("series contains duplicate dates")
	ErrNegativeNAVSeen = errors.New("series contains a negative net value")
)

// NavPoint is a single net-asset-value observation.
type NavPoint struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"net_value"`
}

// PriceSeries holds the NAV history of one fund, oldest first.
// Non-trading days are absent, never zero-filled.
type PriceSeries struct {
	FundCode string     `json:"fund_code"`
	Points   []NavPoint `json:"points"`
}

// NewPriceSeries copies points into a series sorted by date. When two points
// share a date the later one in the input wins.
func NewPriceSeries(fundCode string, points []NavPoint) PriceSeries {
	byDay := make(map[string]int, len(points))
	out := make([]NavPoint, 0, len(points))
	for _, p := range points {
		p.Date = truncateDay(p.Date)
		key := p.Date.Format(DateLayout)
		if i, ok := byDay[key]; ok {
			out[i] = p
			continue
		}
		byDay[key] = len(out)
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return PriceSeries{FundCode: fundCode, Points: out}
}

// Validate checks that dates are strictly increasing and values non-negative.
func (s PriceSeries) Validate() error {
	for i, p := range s.Points {
		if p.Value.IsNegative() {
			return fmt.Errorf("%w: %s on %s", ErrNegativeNAVSeen, p.Value, p.Date.Format(DateLayout))
		}
		if i == 0 {
			continue
		}
		prev := s.Points[i-1].Date
		switch {
		case p.Date.Equal(prev):
			return fmt.Errorf("%w: %s", ErrDuplicateDate, p.Date.Format(DateLayout))
		case p.Date.Before(prev):
			return fmt.Errorf("%w: %s after %s", ErrUnsortedSeries, p.Date.Format(DateLayout), prev.Format(DateLayout))
		}
	}
	return nil
}

// Len returns the number of observations.
func (s PriceSeries) Len() int { return len(s.Points) }

// Values returns the NAV values in date order.
func (s PriceSeries) Values() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}

// Dates returns the observation dates in order.
func (s PriceSeries) Dates() []time.Time {
	out := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Date
	}
	return out
}

// Latest returns the most recent observation. ok is false on an empty series.
func (s PriceSeries) Latest() (p NavPoint, ok bool) {
	if len(s.Points) == 0 {
		return NavPoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// Since returns the sub-series with dates on or after from. The points slice
// is shared with s.
func (s PriceSeries) Since(from time.Time) PriceSeries {
	from = truncateDay(from)
	i := sort.Search(len(s.Points), func(i int) bool { return !s.Points[i].Date.Before(from) })
	return PriceSeries{FundCode: s.FundCode, Points: s.Points[i:]}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
