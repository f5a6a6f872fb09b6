package calculator

import (
	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

// CalculateMaxDrawdown tracks the running peak in a single forward pass and
// returns the deepest decline (peak - v) / peak together with the peak and
// trough that produced it. The peak index belongs to the chosen drawdown,
// which is not necessarily the global maximum of the series.
//
// Series shorter than two values yield a zero drawdown at (0, 0).
func CalculateMaxDrawdown(values []decimal.Decimal) model.DrawdownResult {
	res := model.DrawdownResult{MaxDrawdown: decimal.Zero}
	if len(values) < 2 {
		if len(values) == 1 {
			res.PeakValue, res.TroughValue = values[0], values[0]
		}
		return res
	}

	peak, peakIdx := values[0], 0
	res.PeakValue, res.TroughValue = values[0], values[0]
	for i, v := range values {
		if v.GreaterThan(peak) {
			peak, peakIdx = v, i
		}
		if !peak.IsPositive() {
			continue
		}
		dd := div(peak.Sub(v), peak)
		if dd.GreaterThan(res.MaxDrawdown) {
			res.MaxDrawdown = dd
			res.PeakIndex, res.TroughIndex = peakIdx, i
			res.PeakValue, res.TroughValue = peak, v
		}
	}
	return res
}
