package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

func nums(vs ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func constant(v float64, n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

// zigzag is a deterministic NAV-like series with rises and falls.
func zigzag(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	v := decimal.RequireFromString("1.0000")
	steps := []string{"0.0123", "-0.0071", "0.0045", "-0.0210", "0.0098", "0.0002", "-0.0033"}
	for i := range out {
		out[i] = v
		v = v.Add(decimal.RequireFromString(steps[i%len(steps)]))
	}
	return out
}

func assertDec(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	w := decimal.RequireFromString(want)
	if !got.Equal(w) {
		t.Errorf("%s: got %s, want %s", label, got, w)
	}
}

func assertDecNear(t *testing.T, label string, got decimal.Decimal, want string, places int32) {
	t.Helper()
	w := decimal.RequireFromString(want)
	if !got.Round(places).Equal(w) {
		t.Errorf("%s: got %s (rounded %s), want %s", label, got, got.Round(places), w)
	}
}

func seriesStrings(s model.IndicatorSeries) []string {
	out := make([]string, len(s))
	for i, v := range s {
		if v.Valid {
			out[i] = v.Decimal.String()
		} else {
			out[i] = "null"
		}
	}
	return out
}
