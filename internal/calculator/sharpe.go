package calculator

import (
	"math"

	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

// DefaultRiskFreeRate is the annual risk-free rate used for Sharpe ratios.
var DefaultRiskFreeRate = decimal.NewFromFloat(0.015)

// CalculateSharpe computes total return last/first - 1, the annualized
// return (1+total)^(252/(n-1)) - 1 and the Sharpe ratio
// (annualized - riskFreeRate) / annualized volatility.
//
// The ratio is null whenever the annualized volatility is null or zero.
// A zero first value gives a zero total return.
func CalculateSharpe(values []decimal.Decimal, riskFreeRate decimal.Decimal) model.SharpeResult {
	res := model.SharpeResult{TotalReturn: decimal.Zero, AnnualizedReturn: decimal.Zero}
	n := len(values)
	if n < 2 {
		return res
	}

	first, last := values[0], values[n-1]
	if !first.IsZero() {
		res.TotalReturn = div(last, first).Sub(one)
	}
	annualized, ok := annualizeReturn(res.TotalReturn, n-1)
	if ok {
		res.AnnualizedReturn = annualized
	}

	vol := CalculateVolatility(values, true)
	res.AnnualizedVolatility = vol.Annualized
	if !ok || !vol.Annualized.Valid || vol.Annualized.Decimal.IsZero() {
		return res
	}
	res.Sharpe = valid(div(res.AnnualizedReturn.Sub(riskFreeRate), vol.Annualized.Decimal))
	return res
}

// annualizeReturn compounds a total return earned over periods steps to a
// yearly rate. The fractional power is taken in float64; decimal has no
// real-exponent power. ok is false when the result is not finite.
func annualizeReturn(total decimal.Decimal, periods int) (decimal.Decimal, bool) {
	if total.IsZero() {
		return decimal.Zero, true
	}
	base := one.Add(total)
	if !base.IsPositive() {
		return one.Neg(), true
	}
	growth := math.Pow(base.InexactFloat64(), float64(TradingDaysPerYear)/float64(periods))
	if math.IsInf(growth, 0) || math.IsNaN(growth) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(growth).Sub(one).Round(Scale), true
}
