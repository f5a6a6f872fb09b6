package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

const (
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// CalculateMACD computes DIF = EMA(fast) - EMA(slow), DEA = EMA(DIF, signal)
// and the histogram MACD = (DIF - DEA) * 2.
//
// All three lines are as long as values. With fewer than slow observations
// every entry is null; earlier releases returned empty lines in that case.
func CalculateMACD(values []decimal.Decimal, fast, slow, signal int) (model.MacdResult, error) {
	if err := checkPeriod("MACD", "fast", fast); err != nil {
		return model.MacdResult{}, err
	}
	if err := checkPeriod("MACD", "slow", slow); err != nil {
		return model.MacdResult{}, err
	}
	if err := checkPeriod("MACD", "signal", signal); err != nil {
		return model.MacdResult{}, err
	}
	if fast >= slow {
		return model.MacdResult{}, &ParamError{
			Indicator: "MACD",
			Field:     "fast",
			Value:     fmt.Sprintf("%d (slow %d)", fast, slow),
			Err:       ErrFastNotBelowSlow,
		}
	}

	n := len(values)
	res := model.MacdResult{
		DIF:  model.NullSeries(n),
		DEA:  model.NullSeries(n),
		MACD: model.NullSeries(n),
	}
	if n < slow {
		return res, nil
	}

	emaFast := ema(values, fast)
	emaSlow := ema(values, slow)
	dif := make([]decimal.Decimal, n)
	for i := range values {
		dif[i] = emaFast[i].Sub(emaSlow[i])
	}
	dea := ema(dif, signal)
	for i := range values {
		res.DIF[i] = valid(dif[i])
		res.DEA[i] = valid(dea[i])
		res.MACD[i] = valid(dif[i].Sub(dea[i]).Mul(two))
	}
	return res, nil
}
