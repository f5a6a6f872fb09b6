package strategy

import "FundLens/internal/model"

// Tiers defines the 7-level contribution mapping.
var Tiers = []struct {
	MinScore float64
	Tier     model.SuggestionTier
}{
	{1.5, model.SuggestionTier{Label: "极限加仓", Multiplier: 2.0}},
	{1.2, model.SuggestionTier{Label: "重仓买入", Multiplier: 1.5}},
	{0.8, model.SuggestionTier{Label: "加仓买入", Multiplier: 1.25}},
	{0.0, model.SuggestionTier{Label: "正常定投", Multiplier: 1.0}},
	{-0.8, model.SuggestionTier{Label: "缩减定投", Multiplier: 0.5}},
	{-1.5, model.SuggestionTier{Label: "轻仓观望", Multiplier: 0.25}},
}

// DefaultTier is the lowest tier for scores < -1.5.
var DefaultTier = model.SuggestionTier{Label: "暂停定投", Multiplier: 0}

// TakeProfitRSI is the RSI above which a take-profit warning is raised.
const TakeProfitRSI = 85

// mapTier maps a total score to a SuggestionTier.
func mapTier(totalScore float64) model.SuggestionTier {
	for _, t := range Tiers {
		if totalScore >= t.MinScore {
			return t.Tier
		}
	}
	return DefaultTier
}

// Evaluate scores a fund snapshot. Missing indicator readings score zero.
func Evaluate(snap *model.Snapshot) *model.TechnicalSignal {
	f1 := scoreMA20Deviation(snap)
	f2 := scoreRSI(snap)
	f3 := scoreMACDMomentum(snap)
	f5 := scoreTrendTracker(snap)

	otherFactorsAvg := (f1.RawScore + f2.RawScore + f3.RawScore + f5.RawScore) / 4.0
	f4 := scoreRangePosition(snap, otherFactorsAvg)

	factors := []model.FactorScore{f1, f2, f3, f4, f5}
	var totalScore float64
	for _, f := range factors {
		totalScore += f.Weighted
	}

	signal := &model.TechnicalSignal{
		Factors:    factors,
		TotalScore: totalScore,
		Tier:       mapTier(totalScore),
	}
	if rsi, ok := float(snap.RSI); ok && rsi > TakeProfitRSI {
		signal.WarningMsg = "⚠️ RSI > 85 止盈预警：建议考虑部分止盈"
	}
	return signal
}
