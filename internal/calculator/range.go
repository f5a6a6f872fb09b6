package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DefaultRangeLookback is one year of trading days.
const DefaultRangeLookback = 252

// PeriodRange scans the most recent lookback values and returns the high and
// low. A series shorter than lookback is scanned in full.
func PeriodRange(values []decimal.Decimal, lookback int) (high, low decimal.Decimal, err error) {
	if err := checkPeriod("Range", "lookback", lookback); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if len(values) == 0 {
		return decimal.Zero, decimal.Zero, errors.New("no values provided")
	}
	start := len(values) - lookback
	if start < 0 {
		start = 0
	}
	high, low = windowHighLow(values[start:])
	return high, low, nil
}

// RangePosition returns where current sits within [low, high] (0.0~1.0).
// A flat range yields 0.5.
func RangePosition(current, high, low decimal.Decimal) (decimal.Decimal, error) {
	if high.Equal(low) {
		return decimal.NewFromFloat(0.5), nil
	}
	if high.LessThan(low) {
		return decimal.Zero, errors.New("high must be >= low")
	}
	pos := div(current.Sub(low), high.Sub(low))
	if pos.IsNegative() {
		pos = decimal.Zero
	}
	if pos.GreaterThan(one) {
		pos = one
	}
	return pos, nil
}

// windowHighLow returns the max and min of a non-empty window.
func windowHighLow(window []decimal.Decimal) (high, low decimal.Decimal) {
	high, low = window[0], window[0]
	for _, v := range window[1:] {
		if v.GreaterThan(high) {
			high = v
		}
		if v.LessThan(low) {
			low = v
		}
	}
	return high, low
}
