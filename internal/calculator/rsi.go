package calculator

import (
	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

// DefaultRSIPeriod is the conventional RSI window.
const DefaultRSIPeriod = 14

// CalculateRSI computes the Wilder-smoothed RSI over the given period.
// Requires at least period+1 values; otherwise every entry is null.
// Index period holds the first defined value. RSI is exactly 100 whenever
// the average loss is zero.
func CalculateRSI(values []decimal.Decimal, period int) (model.IndicatorSeries, error) {
	if err := checkPeriod("RSI", "period", period); err != nil {
		return nil, err
	}
	out := model.NullSeries(len(values))
	if len(values) < period+1 {
		return out, nil
	}

	// Initial average gain/loss over the first `period` changes
	avgGain, avgLoss := decimal.Zero, decimal.Zero
	for i := 1; i <= period; i++ {
		gain, loss := splitChange(values[i].Sub(values[i-1]))
		avgGain = avgGain.Add(gain)
		avgLoss = avgLoss.Add(loss)
	}
	avgGain = divInt(avgGain, period)
	avgLoss = divInt(avgLoss, period)
	out[period] = valid(rsiValue(avgGain, avgLoss))

	// Wilder smoothing for remaining values
	prevWeight := decimal.NewFromInt(int64(period - 1))
	for i := period + 1; i < len(values); i++ {
		gain, loss := splitChange(values[i].Sub(values[i-1]))
		avgGain = divInt(avgGain.Mul(prevWeight).Add(gain), period)
		avgLoss = divInt(avgLoss.Mul(prevWeight).Add(loss), period)
		out[i] = valid(rsiValue(avgGain, avgLoss))
	}
	return out, nil
}

func splitChange(change decimal.Decimal) (gain, loss decimal.Decimal) {
	if change.IsPositive() {
		return change, decimal.Zero
	}
	return decimal.Zero, change.Neg()
}

func rsiValue(avgGain, avgLoss decimal.Decimal) decimal.Decimal {
	if avgLoss.IsZero() {
		return hundred
	}
	rs := div(avgGain, avgLoss)
	return hundred.Sub(div(hundred, one.Add(rs)))
}
