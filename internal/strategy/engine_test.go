package strategy

import (
	"testing"

	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

func nd(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

func findFactor(sig *model.TechnicalSignal, name string) model.FactorScore {
	for _, f := range sig.Factors {
		if f.Name == name {
			return f
		}
	}
	return model.FactorScore{}
}

func TestEvaluate_NormalMarket(t *testing.T) {
	snap := &model.Snapshot{
		CurrentValue: nd(1.2010),
		MA5:          nd(1.2000),
		MA10:         nd(1.2030),
		MA20:         nd(1.1990),
		RSI:          nd(50),
		DIF:          nd(0.0010),
		DEA:          nd(0.0010),
		MACD:         nd(0),
		RangeHigh:    nd(1.3000),
		RangeLow:     nd(1.1000),
		RangePos:     nd(0.505),
	}
	sig := Evaluate(snap)
	if sig == nil {
		t.Fatal("expected non-nil signal")
	}
	if len(sig.Factors) != 5 {
		t.Fatalf("expected 5 factors, got %d", len(sig.Factors))
	}
	if sig.WarningMsg != "" {
		t.Errorf("unexpected warning: %s", sig.WarningMsg)
	}
	if sig.Tier.Label != "正常定投" {
		t.Errorf("expected neutral tier, got %q (score %.3f)", sig.Tier.Label, sig.TotalScore)
	}
}

func TestEvaluate_ExtremeOversold(t *testing.T) {
	snap := &model.Snapshot{
		CurrentValue: nd(0.9000),
		MA5:          nd(0.9300),
		MA10:         nd(0.9600),
		MA20:         nd(1.0000),
		RSI:          nd(20),
		DIF:          nd(-0.0300),
		DEA:          nd(-0.0250),
		MACD:         nd(-0.0100),
		RangeHigh:    nd(1.2000),
		RangeLow:     nd(0.8950),
		RangePos:     nd(0.016),
	}
	sig := Evaluate(snap)
	if sig.TotalScore < 0.8 {
		t.Errorf("expected high score for oversold fund, got %.3f", sig.TotalScore)
	}
	if sig.Tier.Multiplier <= 1 {
		t.Errorf("expected an above-normal contribution tier, got %+v", sig.Tier)
	}
}

func TestEvaluate_ExtremeOverbought(t *testing.T) {
	snap := &model.Snapshot{
		CurrentValue: nd(1.5000),
		MA5:          nd(1.4600),
		MA10:         nd(1.4200),
		MA20:         nd(1.3500),
		RSI:          nd(90),
		DIF:          nd(0.0400),
		DEA:          nd(0.0450),
		MACD:         nd(-0.0100),
		RangeHigh:    nd(1.5000),
		RangeLow:     nd(1.0000),
		RangePos:     nd(1),
	}
	sig := Evaluate(snap)
	if sig.TotalScore > -0.5 {
		t.Errorf("expected negative score for overbought fund, got %.3f", sig.TotalScore)
	}
	if sig.WarningMsg == "" {
		t.Error("expected take-profit warning for RSI > 85")
	}
}

func TestEvaluate_MissingReadings(t *testing.T) {
	sig := Evaluate(&model.Snapshot{CurrentValue: nd(1)})
	for _, f := range sig.Factors {
		if f.RawScore != 0 || f.Commentary != unavailable {
			t.Errorf("%s: expected unavailable zero score, got %+v", f.Name, f)
		}
	}
	if sig.Tier.Label != "正常定投" {
		t.Errorf("expected neutral tier, got %q", sig.Tier.Label)
	}
}

func TestMapTier_AllBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		label string
	}{
		{2.0, "极限加仓"},
		{1.5, "极限加仓"},
		{1.3, "重仓买入"},
		{1.2, "重仓买入"},
		{1.0, "加仓买入"},
		{0.8, "加仓买入"},
		{0.5, "正常定投"},
		{0.0, "正常定投"},
		{-0.5, "缩减定投"},
		{-0.8, "缩减定投"},
		{-1.0, "轻仓观望"},
		{-1.5, "轻仓观望"},
		{-1.6, "暂停定投"},
		{-2.0, "暂停定投"},
	}
	for _, tt := range tests {
		tier := mapTier(tt.score)
		if tier.Label != tt.label {
			t.Errorf("score %.1f: expected %q, got %q", tt.score, tt.label, tier.Label)
		}
	}
}

func TestRangePosition_NonlinearCap(t *testing.T) {
	// Position > 95%, other factors avg >= -1 → should cap at -1
	snap := &model.Snapshot{
		CurrentValue: nd(1.2990),
		MA5:          nd(1.2900),
		MA10:         nd(1.2950),
		MA20:         nd(1.2800),
		RSI:          nd(55),
		RangeHigh:    nd(1.3000),
		RangeLow:     nd(1.1000),
		RangePos:     nd(0.995),
	}
	f := findFactor(Evaluate(snap), "区间位置")
	if f.RawScore != -1.0 {
		t.Errorf("range factor should cap at -1 when other factors avg >= -1, got %.1f", f.RawScore)
	}

	// Position > 95%, other factors avg < -1 → should give -2
	hot := &model.Snapshot{
		CurrentValue: nd(1.2990),
		MA5:          nd(1.2100),
		MA10:         nd(1.2200),
		MA20:         nd(1.1500),
		RSI:          nd(82),
		DIF:          nd(0.0300),
		DEA:          nd(0.0350),
		MACD:         nd(-0.0100),
		RangeHigh:    nd(1.3000),
		RangeLow:     nd(1.1000),
		RangePos:     nd(0.995),
	}
	sig := Evaluate(hot)
	f = findFactor(sig, "区间位置")
	if f.RawScore != -2.0 {
		t.Errorf("range factor should be -2 when other factors avg < -1, got %.1f (total=%.3f)", f.RawScore, sig.TotalScore)
	}
}

func TestTrendTracker_BullBear(t *testing.T) {
	bull := &model.Snapshot{
		CurrentValue: nd(1.3000),
		MA5:          nd(1.2800),
		MA10:         nd(1.2600),
		MA20:         nd(1.2400),
		RangeHigh:    nd(1.3050),
		RangeLow:     nd(1.0000),
	}
	f := findFactor(Evaluate(bull), "趋势追踪")
	if f.RawScore != 1.5 {
		t.Errorf("expected bullish trend near high to score 1.5, got %.1f", f.RawScore)
	}

	bear := &model.Snapshot{
		CurrentValue: nd(1.0000),
		MA5:          nd(1.0200),
		MA10:         nd(1.0400),
		MA20:         nd(1.0600),
		RangeHigh:    nd(1.3000),
		RangeLow:     nd(0.9000),
	}
	f = findFactor(Evaluate(bear), "趋势追踪")
	if f.RawScore != -0.5 {
		t.Errorf("expected bearish trend score -0.5, got %.1f", f.RawScore)
	}
}
