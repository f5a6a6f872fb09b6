package calculator

import (
	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

// TradingDaysPerYear annualizes daily statistics.
const TradingDaysPerYear = 252

var sqrtTradingDays = Sqrt(decimal.NewFromInt(TradingDaysPerYear))

// CalculateVolatility returns the population standard deviation of simple
// returns (p[i] - p[i-1]) / p[i-1]. Returns whose base is zero are skipped.
// The annualized figure is daily * sqrt(252); it is null when annualize is
// false or fewer than two returns are usable.
func CalculateVolatility(values []decimal.Decimal, annualize bool) model.VolatilityResult {
	returns := simpleReturns(values)
	res := model.VolatilityResult{Daily: decimal.Zero, Returns: len(returns)}
	if len(returns) == 0 {
		return res
	}
	res.Daily = populationStdDev(returns, mean(returns))
	if annualize && len(returns) >= 2 {
		res.Annualized = valid(res.Daily.Mul(sqrtTradingDays).Round(Scale))
	}
	return res
}

func simpleReturns(values []decimal.Decimal) []decimal.Decimal {
	if len(values) < 2 {
		return nil
	}
	out := make([]decimal.Decimal, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev.IsZero() {
			continue
		}
		out = append(out, div(values[i].Sub(prev), prev))
	}
	return out
}
