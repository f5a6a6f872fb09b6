package strategy

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

const (
	weightMA20   = 0.30
	weightRSI    = 0.25
	weightMACD   = 0.15
	weightRange  = 0.10
	weightTrend  = 0.20
	unavailable  = "数据不足"
	nearHighBand = 0.01
)

func float(v decimal.NullDecimal) (float64, bool) {
	if !v.Valid {
		return 0, false
	}
	return v.Decimal.InexactFloat64(), true
}

func factor(name string, score, weight float64, commentary string) model.FactorScore {
	return model.FactorScore{
		Name:       name,
		RawScore:   score,
		Weight:     weight,
		Weighted:   score * weight,
		Commentary: commentary,
	}
}

// scoreMA20Deviation scores how far the latest NAV deviates from MA20.
// Fund NAVs move far less than index prices, so the bands are narrow.
func scoreMA20Deviation(snap *model.Snapshot) model.FactorScore {
	price, ok1 := float(snap.CurrentValue)
	ma20, ok2 := float(snap.MA20)
	if !ok1 || !ok2 || ma20 == 0 {
		return factor("MA20偏离度", 0, weightMA20, unavailable)
	}
	deviation := (price - ma20) / ma20 * 100

	var score float64
	switch {
	case deviation <= -8:
		score = 2.0
	case deviation <= -5:
		score = 1.5
	case deviation <= -3:
		score = 1.0
	case deviation <= 0:
		score = 0.5
	case deviation <= 2:
		score = 0
	case deviation <= 4:
		score = -0.5
	case deviation <= 6:
		score = -1.0
	case deviation <= 8:
		score = -1.5
	default:
		score = -2.0
	}
	return factor("MA20偏离度", score, weightMA20, fmt.Sprintf("偏离 %+.1f%%", deviation))
}

// scoreRSI scores the latest RSI(14).
func scoreRSI(snap *model.Snapshot) model.FactorScore {
	rsi, ok := float(snap.RSI)
	if !ok {
		return factor("RSI", 0, weightRSI, unavailable)
	}
	var score float64
	switch {
	case rsi <= 25:
		score = 2.0
	case rsi <= 30:
		score = 1.5
	case rsi <= 40:
		score = 1.0
	case rsi <= 45:
		score = 0.5
	case rsi <= 55:
		score = 0
	case rsi <= 60:
		score = -0.5
	case rsi <= 70:
		score = -1.0
	case rsi <= 80:
		score = -1.5
	default:
		score = -2.0
	}
	return factor("RSI", score, weightRSI, fmt.Sprintf("RSI=%.0f", rsi))
}

// scoreMACDMomentum scores the DIF/DEA relation and the histogram sign.
// A histogram below zero with DIF under the zero axis is read as a
// washed-out market and scores positively, matching the contrarian bias of
// the other factors.
func scoreMACDMomentum(snap *model.Snapshot) model.FactorScore {
	dif, ok1 := float(snap.DIF)
	dea, ok2 := float(snap.DEA)
	hist, ok3 := float(snap.MACD)
	if !ok1 || !ok2 || !ok3 {
		return factor("MACD动能", 0, weightMACD, unavailable)
	}

	var score float64
	var commentary string
	switch {
	case dif < 0 && dif > dea:
		score = 1.0
		commentary = "零轴下金叉"
	case dif < 0 && hist < 0:
		score = 0.5
		commentary = "零轴下走弱"
	case dif > 0 && dif < dea:
		score = -1.0
		commentary = "零轴上死叉"
	case dif > 0 && hist > 0:
		score = -0.5
		commentary = "零轴上走强"
	default:
		score = 0
		commentary = "动能中性"
	}
	return factor("MACD动能", score, weightMACD, commentary)
}

// scoreRangePosition scores where the NAV sits in its trailing range.
// Special logic: when position > 95%, requires otherFactorsAvg < -1 to give -2, otherwise caps at -1.
func scoreRangePosition(snap *model.Snapshot, otherFactorsAvg float64) model.FactorScore {
	p, ok := float(snap.RangePos)
	if !ok {
		return factor("区间位置", 0, weightRange, unavailable)
	}
	pos := p * 100

	var score float64
	switch {
	case pos <= 10:
		score = 2.0
	case pos <= 20:
		score = 1.5
	case pos <= 30:
		score = 1.0
	case pos <= 40:
		score = 0.5
	case pos <= 60:
		score = 0
	case pos <= 70:
		score = -0.5
	case pos <= 80:
		score = -1.0
	case pos <= 95:
		score = -1.5
	default:
		if otherFactorsAvg < -1 {
			score = -2.0
		} else {
			score = -1.0
		}
	}
	return factor("区间位置", score, weightRange, fmt.Sprintf("位置=%.0f%%", pos))
}

// scoreTrendTracker scores MA alignment and proximity to the range extremes.
// Bull alignment: price > MA5 > MA10 > MA20
// Bear alignment: price < MA5 < MA10 < MA20
func scoreTrendTracker(snap *model.Snapshot) model.FactorScore {
	price, ok0 := float(snap.CurrentValue)
	ma5, ok1 := float(snap.MA5)
	ma10, ok2 := float(snap.MA10)
	ma20, ok3 := float(snap.MA20)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return factor("趋势追踪", 0, weightTrend, unavailable)
	}

	bullish := price > ma5 && ma5 > ma10 && ma10 > ma20
	bearish := price < ma5 && ma5 < ma10 && ma10 < ma20

	high, okH := float(snap.RangeHigh)
	low, okL := float(snap.RangeLow)
	nearHigh := okH && high > 0 && math.Abs(price-high)/high < nearHighBand
	nearLow := okL && low > 0 && math.Abs(price-low)/low < nearHighBand

	var score float64
	var commentary string
	switch {
	case bullish && nearHigh:
		score = 1.5
		commentary = "多头排列+区间新高"
	case bullish:
		score = 1.0
		commentary = "多头排列"
	case bearish && nearLow:
		score = -1.0
		commentary = "空头排列+区间新低"
	case bearish:
		score = -0.5
		commentary = "空头排列"
	default:
		score = 0
		commentary = "震荡"
	}
	return factor("趋势追踪", score, weightTrend, commentary)
}
