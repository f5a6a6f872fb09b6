package model

import "time"

// FundProfile is the descriptive record of a tracked fund.
type FundProfile struct {
	Code      string `json:"fund_code"`
	Name      string `json:"fund_name"`
	Type      string `json:"fund_type,omitempty"`
	RiskLevel string `json:"risk_level,omitempty"`
}

// ChartData is the aligned price/indicator bundle of one chart window.
type ChartData struct {
	FundCode string                  `json:"fund_code"`
	Period   string                  `json:"period"`
	Dates    []string                `json:"dates"`
	Values   []float64               `json:"values"`
	MA       map[int]IndicatorSeries `json:"ma,omitempty"`
	MACD     *MacdResult             `json:"macd,omitempty"`
	RSI      IndicatorSeries         `json:"rsi,omitempty"`
	KDJ      *KDJResult              `json:"kdj,omitempty"`
	Boll     *BollingerResult        `json:"boll,omitempty"`
	Series   PriceSeries             `json:"-"`
}

// Report bundles everything computed for one fund and chart window.
type Report struct {
	Profile     *FundProfile     `json:"profile,omitempty"`
	Chart       *ChartData       `json:"chart"`
	Snapshot    *Snapshot        `json:"snapshot"`
	Risk        *RiskMetrics     `json:"risk,omitempty"`
	Signal      *TechnicalSignal `json:"signal,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
}
