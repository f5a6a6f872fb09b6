package calculator

import (
	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

const (
	DefaultKDJPeriod = 9
	DefaultKDJM1     = 3
	DefaultKDJM2     = 3
)

// CalculateKDJ computes the stochastic K, D and J lines.
//
// Funds publish a single NAV per day, so the period high and low are the
// max and min of the NAV itself over the window; this approximates the
// intraday-range oscillator. RSV is 50 on a flat window. K and D start
// from 50 and J = 3K - 2D is not clamped.
//
// The first n-1 entries are null. A series shorter than n is all null
// (earlier releases returned empty lines).
func CalculateKDJ(values []decimal.Decimal, n, m1, m2 int) (model.KDJResult, error) {
	if err := checkPeriod("KDJ", "n", n); err != nil {
		return model.KDJResult{}, err
	}
	if err := checkPeriod("KDJ", "m1", m1); err != nil {
		return model.KDJResult{}, err
	}
	if err := checkPeriod("KDJ", "m2", m2); err != nil {
		return model.KDJResult{}, err
	}

	size := len(values)
	res := model.KDJResult{
		K: model.NullSeries(size),
		D: model.NullSeries(size),
		J: model.NullSeries(size),
	}
	if size < n {
		return res, nil
	}

	kWeight := decimal.NewFromInt(int64(m1 - 1))
	dWeight := decimal.NewFromInt(int64(m2 - 1))
	k, d := fifty, fifty
	for i := n - 1; i < size; i++ {
		high, low := windowHighLow(values[i-n+1 : i+1])
		rsv := fifty
		if !high.Equal(low) {
			rsv = div(values[i].Sub(low), high.Sub(low)).Mul(hundred)
		}
		k = divInt(k.Mul(kWeight).Add(rsv), m1)
		d = divInt(d.Mul(dWeight).Add(k), m2)
		res.K[i] = valid(k)
		res.D[i] = valid(d)
		res.J[i] = valid(k.Mul(three).Sub(d.Mul(two)))
	}
	return res, nil
}
