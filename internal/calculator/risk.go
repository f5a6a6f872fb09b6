package calculator

import (
	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

// MinRiskPoints is the series length below which risk figures are flagged
// as low confidence. Callers are expected to gate on it; the aggregator
// itself computes regardless.
const MinRiskPoints = 20

// riskPlaces is the presentation precision of RiskMetrics.
const riskPlaces = 2

// CalculateRiskMetrics composes max drawdown, volatility and the Sharpe
// ratio into one percentage-scaled report. Short series never fail: fewer
// than two values give zero drawdown and volatility and a null Sharpe.
func CalculateRiskMetrics(values []decimal.Decimal, riskFreeRate decimal.Decimal) model.RiskMetrics {
	dd := CalculateMaxDrawdown(values)
	vol := CalculateVolatility(values, true)
	sharpe := CalculateSharpe(values, riskFreeRate)

	rm := model.RiskMetrics{
		MaxDrawdownPct:      pct(dd.MaxDrawdown),
		DailyVolatilityPct:  pct(vol.Daily),
		TotalReturnPct:      pct(sharpe.TotalReturn),
		AnnualizedReturnPct: pct(sharpe.AnnualizedReturn),
		PeakIndex:           dd.PeakIndex,
		TroughIndex:         dd.TroughIndex,
		Points:              len(values),
		LowConfidence:       len(values) < MinRiskPoints,
	}
	if vol.Annualized.Valid {
		rm.AnnualizedVolatilityPct = valid(pct(vol.Annualized.Decimal))
	}
	if sharpe.Sharpe.Valid {
		rm.SharpeRatio = valid(sharpe.Sharpe.Decimal.Round(riskPlaces))
	}
	return rm
}

func pct(fraction decimal.Decimal) decimal.Decimal {
	return fraction.Mul(hundred).Round(riskPlaces)
}
