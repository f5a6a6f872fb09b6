package calculator

import (
	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

const DefaultBollPeriod = 20

// DefaultBollMultiplier is the band width in standard deviations.
var DefaultBollMultiplier = decimal.NewFromInt(2)

// CalculateBollinger computes the middle band (SMA) and the upper/lower
// bands at multiplier population standard deviations of the same window.
// Bands are null wherever the middle band is null.
func CalculateBollinger(values []decimal.Decimal, period int, multiplier decimal.Decimal) (model.BollingerResult, error) {
	if multiplier.IsNegative() {
		return model.BollingerResult{}, &ParamError{
			Indicator: "BOLL",
			Field:     "multiplier",
			Value:     multiplier.String(),
			Err:       ErrInvalidMultiplier,
		}
	}
	middle, err := CalculateSMA(values, period)
	if err != nil {
		return model.BollingerResult{}, err
	}

	res := model.BollingerResult{
		Upper:  model.NullSeries(len(values)),
		Middle: middle,
		Lower:  model.NullSeries(len(values)),
	}
	for i, m := range middle {
		if !m.Valid {
			continue
		}
		std := populationStdDev(values[i-period+1:i+1], m.Decimal)
		width := std.Mul(multiplier)
		res.Upper[i] = valid(m.Decimal.Add(width))
		res.Lower[i] = valid(m.Decimal.Sub(width))
	}
	return res, nil
}
