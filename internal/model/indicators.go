package model

import "github.com/shopspring/decimal"

// IndicatorSeries is index-aligned with the PriceSeries it was computed from.
// Positions where the window is not yet populated are null, never zero.
type IndicatorSeries []decimal.NullDecimal

// NullSeries returns an all-null series of length n.
func NullSeries(n int) IndicatorSeries {
	return make(IndicatorSeries, n)
}

// Defined counts the non-null entries.
func (s IndicatorSeries) Defined() int {
	n := 0
	for _, v := range s {
		if v.Valid {
			n++
		}
	}
	return n
}

// Latest returns the last non-null value.
func (s IndicatorSeries) Latest() (decimal.Decimal, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Valid {
			return s[i].Decimal, true
		}
	}
	return decimal.Zero, false
}

// Round returns a copy with every defined value rounded to places.
func (s IndicatorSeries) Round(places int32) IndicatorSeries {
	out := make(IndicatorSeries, len(s))
	for i, v := range s {
		if v.Valid {
			out[i] = decimal.NewNullDecimal(v.Decimal.Round(places))
		}
	}
	return out
}

// Floats converts to IEEE doubles for serialization; nulls stay nil.
func (s IndicatorSeries) Floats() []*float64 {
	out := make([]*float64, len(s))
	for i, v := range s {
		if v.Valid {
			f := v.Decimal.InexactFloat64()
			out[i] = &f
		}
	}
	return out
}

// MacdResult holds the three MACD lines.
type MacdResult struct {
	DIF  IndicatorSeries `json:"dif"`
	DEA  IndicatorSeries `json:"dea"`
	MACD IndicatorSeries `json:"macd"`
}

// KDJResult holds the stochastic K, D and J lines.
type KDJResult struct {
	K IndicatorSeries `json:"k"`
	D IndicatorSeries `json:"d"`
	J IndicatorSeries `json:"j"`
}

// BollingerResult holds the three Bollinger bands.
type BollingerResult struct {
	Upper  IndicatorSeries `json:"upper"`
	Middle IndicatorSeries `json:"middle"`
	Lower  IndicatorSeries `json:"lower"`
}

// Snapshot is the latest reading of every chart indicator, what the
// commentary layer consumes.
type Snapshot struct {
	FundCode     string              `json:"fund_code"`
	CurrentValue decimal.NullDecimal `json:"current_value"`
	MA5          decimal.NullDecimal `json:"ma5"`
	MA10         decimal.NullDecimal `json:"ma10"`
	MA20         decimal.NullDecimal `json:"ma20"`
	RSI          decimal.NullDecimal `json:"rsi"`
	DIF          decimal.NullDecimal `json:"dif"`
	DEA          decimal.NullDecimal `json:"dea"`
	MACD         decimal.NullDecimal `json:"macd"`
	K            decimal.NullDecimal `json:"k"`
	D            decimal.NullDecimal `json:"d"`
	J            decimal.NullDecimal `json:"j"`
	BollUpper    decimal.NullDecimal `json:"boll_upper"`
	BollLower    decimal.NullDecimal `json:"boll_lower"`
	Change5d     decimal.Decimal     `json:"change_5d"`
	Change20d    decimal.Decimal     `json:"change_20d"`
	RangeHigh    decimal.NullDecimal `json:"range_high"`
	RangeLow     decimal.NullDecimal `json:"range_low"`
	RangePos     decimal.NullDecimal `json:"range_position"` // 0.0 ~ 1.0
}
