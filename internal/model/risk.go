package model

import "github.com/shopspring/decimal"

// DrawdownResult describes the deepest peak-to-trough decline of a series.
// MaxDrawdown is a fraction (0.30 means 30%).
type DrawdownResult struct {
	MaxDrawdown decimal.Decimal `json:"max_drawdown"`
	PeakIndex   int             `json:"peak_index"`
	TroughIndex int             `json:"trough_index"`
	PeakValue   decimal.Decimal `json:"peak_value"`
	TroughValue decimal.Decimal `json:"trough_value"`
}

// VolatilityResult holds the standard deviation of simple returns.
type VolatilityResult struct {
	Daily      decimal.Decimal     `json:"daily"`
	Annualized decimal.NullDecimal `json:"annualized"`
	Returns    int                 `json:"returns"`
}

// SharpeResult holds the return/volatility composite and its inputs.
type SharpeResult struct {
	TotalReturn          decimal.Decimal     `json:"total_return"`
	AnnualizedReturn     decimal.Decimal     `json:"annualized_return"`
	AnnualizedVolatility decimal.NullDecimal `json:"annualized_volatility"`
	Sharpe               decimal.NullDecimal `json:"sharpe_ratio"`
}

// RiskMetrics is the percentage-scaled risk report of one series.
type RiskMetrics struct {
	MaxDrawdownPct          decimal.Decimal     `json:"max_drawdown_pct"`
	DailyVolatilityPct      decimal.Decimal     `json:"daily_volatility_pct"`
	AnnualizedVolatilityPct decimal.NullDecimal `json:"annualized_volatility_pct"`
	TotalReturnPct          decimal.Decimal     `json:"total_return_pct"`
	AnnualizedReturnPct     decimal.Decimal     `json:"annualized_return_pct"`
	SharpeRatio             decimal.NullDecimal `json:"sharpe_ratio"`
	PeakIndex               int                 `json:"peak_index"`
	TroughIndex             int                 `json:"trough_index"`
	Points                  int                 `json:"points"`
	LowConfidence           bool                `json:"low_confidence"`
}
