package calculator

import (
	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

// CalculateSMA computes the simple moving average of values over period.
// Entries before the first full window are null; a series shorter than
// period is all null. No presentation rounding is applied.
func CalculateSMA(values []decimal.Decimal, period int) (model.IndicatorSeries, error) {
	if err := checkPeriod("MA", "period", period); err != nil {
		return nil, err
	}
	out := model.NullSeries(len(values))
	if len(values) < period {
		return out, nil
	}
	sum := decimal.Zero
	for i, v := range values {
		sum = sum.Add(v)
		if i >= period {
			sum = sum.Sub(values[i-period])
		}
		if i >= period-1 {
			out[i] = valid(divInt(sum, period))
		}
	}
	return out, nil
}

// CalculateEMA computes the exponential moving average with k = 2/(period+1).
//
// The average is seeded with the first observation rather than a windowed
// mean, so short series carry a bias that decays geometrically. The result
// is never null and always as long as values.
func CalculateEMA(values []decimal.Decimal, period int) ([]decimal.Decimal, error) {
	if err := checkPeriod("EMA", "period", period); err != nil {
		return nil, err
	}
	return ema(values, period), nil
}

func ema(values []decimal.Decimal, period int) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	if len(values) == 0 {
		return out
	}
	k := div(two, decimal.NewFromInt(int64(period+1)))
	rest := one.Sub(k)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i].Mul(k).Add(out[i-1].Mul(rest)).Round(Scale)
	}
	return out
}
