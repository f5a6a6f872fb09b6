package chart

import (
	"github.com/shopspring/decimal"

	"FundLens/internal/calculator"
	"FundLens/internal/model"
)

const (
	snapshotPlaces = 4
	changePlaces   = 2
)

// Summarize reads the latest defined value of every indicator in cd and the
// recent percentage changes. rangeLookback bounds the high/low scan.
func Summarize(cd *model.ChartData, rangeLookback int) (*model.Snapshot, error) {
	snap := &model.Snapshot{FundCode: cd.FundCode}
	values := cd.Series.Values()
	if len(values) == 0 {
		return snap, nil
	}

	snap.CurrentValue = decimal.NewNullDecimal(values[len(values)-1])
	snap.MA5 = latest(cd.MA[5])
	snap.MA10 = latest(cd.MA[10])
	snap.MA20 = latest(cd.MA[20])
	snap.RSI = latest(cd.RSI)
	if cd.MACD != nil {
		snap.DIF = latest(cd.MACD.DIF)
		snap.DEA = latest(cd.MACD.DEA)
		snap.MACD = latest(cd.MACD.MACD)
	}
	if cd.KDJ != nil {
		snap.K = latest(cd.KDJ.K)
		snap.D = latest(cd.KDJ.D)
		snap.J = latest(cd.KDJ.J)
	}
	if cd.Boll != nil {
		snap.BollUpper = latest(cd.Boll.Upper)
		snap.BollLower = latest(cd.Boll.Lower)
	}
	snap.Change5d = ChangePct(values, 5)
	snap.Change20d = ChangePct(values, 20)

	high, low, err := calculator.PeriodRange(values, rangeLookback)
	if err != nil {
		return nil, err
	}
	pos, err := calculator.RangePosition(values[len(values)-1], high, low)
	if err != nil {
		return nil, err
	}
	snap.RangeHigh = decimal.NewNullDecimal(high)
	snap.RangeLow = decimal.NewNullDecimal(low)
	snap.RangePos = decimal.NewNullDecimal(pos.Round(snapshotPlaces))
	return snap, nil
}

// ChangePct returns (v[-1] - v[-k]) / v[-k] * 100 rounded to two places.
// It is zero when the series holds fewer than k values or v[-k] is zero.
func ChangePct(values []decimal.Decimal, k int) decimal.Decimal {
	n := len(values)
	if k <= 0 || n < k {
		return decimal.Zero
	}
	base := values[n-k]
	if base.IsZero() {
		return decimal.Zero
	}
	return values[n-1].Sub(base).DivRound(base, calculator.Scale).
		Mul(decimal.NewFromInt(100)).Round(changePlaces)
}

func latest(s model.IndicatorSeries) decimal.NullDecimal {
	v, ok := s.Latest()
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(v.Round(snapshotPlaces))
}
