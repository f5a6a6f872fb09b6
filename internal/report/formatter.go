// Package report renders fund reports as plain text.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"FundLens/internal/model"
)

const missing = "-"

func nullStr(v decimal.NullDecimal, places int32) string {
	if !v.Valid {
		return missing
	}
	return v.Decimal.StringFixed(places)
}

func pctStr(v decimal.NullDecimal) string {
	if !v.Valid {
		return missing
	}
	return v.Decimal.StringFixed(2) + "%"
}

func signedPct(v decimal.Decimal) string {
	s := v.StringFixed(2)
	if v.IsPositive() {
		s = "+" + s
	}
	return s + "%"
}

// FormatReport formats a full fund report.
func FormatReport(r *model.Report) string {
	var b strings.Builder

	code := ""
	if r.Chart != nil {
		code = r.Chart.FundCode
	}
	title := code
	if r.Profile != nil && r.Profile.Name != "" {
		title += " " + r.Profile.Name
	}
	b.WriteString(fmt.Sprintf("📊 FundLens 报告 | %s | %s\n", title, r.GeneratedAt.Format(model.DateLayout)))
	if r.Profile != nil && (r.Profile.Type != "" || r.Profile.RiskLevel != "") {
		b.WriteString(fmt.Sprintf("类型: %s | 风险等级: %s\n", orMissing(r.Profile.Type), orMissing(r.Profile.RiskLevel)))
	}
	if r.Chart != nil {
		b.WriteString(fmt.Sprintf("区间: %s (%d 个交易日)\n", r.Chart.Period, len(r.Chart.Dates)))
	}
	b.WriteString("\n")

	if r.Snapshot != nil {
		b.WriteString(FormatSnapshot(r.Snapshot))
		b.WriteString("\n")
	}
	if r.Risk != nil {
		b.WriteString(FormatRisk(r.Risk))
		b.WriteString("\n")
	}
	if r.Signal != nil {
		b.WriteString(FormatSignal(r.Signal))
	}
	return b.String()
}

// FormatSnapshot formats the latest indicator readings.
func FormatSnapshot(s *model.Snapshot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("最新净值: %s\n", nullStr(s.CurrentValue, 4)))

	ma20 := nullStr(s.MA20, 4)
	if s.CurrentValue.Valid && s.MA20.Valid && !s.MA20.Decimal.IsZero() {
		dev := s.CurrentValue.Decimal.Sub(s.MA20.Decimal).Div(s.MA20.Decimal).Mul(decimal.NewFromInt(100))
		ma20 = fmt.Sprintf("%s (偏离 %s)", ma20, signedPct(dev))
	}
	b.WriteString(fmt.Sprintf("MA5: %s | MA10: %s | MA20: %s\n", nullStr(s.MA5, 4), nullStr(s.MA10, 4), ma20))
	b.WriteString(fmt.Sprintf("RSI: %s | MACD: DIF %s DEA %s 柱 %s\n",
		nullStr(s.RSI, 2), nullStr(s.DIF, 4), nullStr(s.DEA, 4), nullStr(s.MACD, 4)))
	b.WriteString(fmt.Sprintf("KDJ: K %s D %s J %s\n", nullStr(s.K, 2), nullStr(s.D, 2), nullStr(s.J, 2)))
	b.WriteString(fmt.Sprintf("布林带: 上 %s 下 %s\n", nullStr(s.BollUpper, 4), nullStr(s.BollLower, 4)))

	pos := missing
	if s.RangePos.Valid {
		pos = s.RangePos.Decimal.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
	}
	b.WriteString(fmt.Sprintf("区间: 高 %s 低 %s 位置 %s\n", nullStr(s.RangeHigh, 4), nullStr(s.RangeLow, 4), pos))
	b.WriteString(fmt.Sprintf("涨跌: 5日 %s | 20日 %s\n", signedPct(s.Change5d), signedPct(s.Change20d)))
	return b.String()
}

// FormatRisk formats the risk metrics block.
func FormatRisk(m *model.RiskMetrics) string {
	var b strings.Builder
	b.WriteString("⚠️ 风险指标:\n")
	b.WriteString(fmt.Sprintf("  最大回撤: %s%%\n", m.MaxDrawdownPct.StringFixed(2)))
	b.WriteString(fmt.Sprintf("  日波动率: %s%% | 年化波动率: %s\n",
		m.DailyVolatilityPct.StringFixed(2), pctStr(m.AnnualizedVolatilityPct)))
	b.WriteString(fmt.Sprintf("  累计收益: %s | 年化收益: %s\n",
		signedPct(m.TotalReturnPct), signedPct(m.AnnualizedReturnPct)))
	b.WriteString(fmt.Sprintf("  夏普比率: %s\n", nullStr(m.SharpeRatio, 2)))
	if m.LowConfidence {
		b.WriteString(fmt.Sprintf("  (仅 %d 个样本，仅供参考)\n", m.Points))
	}
	return b.String()
}

// FormatSignal formats the factor breakdown and the suggestion tier.
func FormatSignal(sig *model.TechnicalSignal) string {
	var b strings.Builder
	b.WriteString("📈 因子评分明细:\n")
	for _, f := range sig.Factors {
		b.WriteString(fmt.Sprintf("  %s(%s): %+.1f (×%.2f) = %+.3f\n",
			f.Name, f.Commentary, f.RawScore, f.Weight, f.Weighted))
	}
	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("  综合评分: %+.3f\n\n", sig.TotalScore))
	b.WriteString(fmt.Sprintf("💰 定投建议: %s %.2fx\n", sig.Tier.Label, sig.Tier.Multiplier))
	if sig.WarningMsg != "" {
		b.WriteString(fmt.Sprintf("\n%s\n", sig.WarningMsg))
	}
	return b.String()
}

// FormatLine formats a one-line summary of a fund, or its error.
func FormatLine(code string, r *model.Report, err error) string {
	if err != nil {
		return fmt.Sprintf("❌ %s: %v", code, err)
	}
	line := fmt.Sprintf("✅ %s", code)
	if r.Snapshot != nil {
		line += " 净值 " + nullStr(r.Snapshot.CurrentValue, 4)
	}
	if r.Risk != nil {
		line += fmt.Sprintf(" 回撤 %s%% 夏普 %s", r.Risk.MaxDrawdownPct.StringFixed(2), nullStr(r.Risk.SharpeRatio, 2))
	}
	if r.Signal != nil {
		line += fmt.Sprintf(" 评分 %+.3f %s", r.Signal.TotalScore, r.Signal.Tier.Label)
	}
	return line
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}
