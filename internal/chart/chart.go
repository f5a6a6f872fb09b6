// Package chart windows a NAV series by period code and computes the aligned
// indicator bundle the charting layer draws.
package chart

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"FundLens/internal/calculator"
	"FundLens/internal/model"
)

// periodDays maps a chart period code to its look-back in calendar days.
// Zero means the whole history.
var periodDays = map[string]int{
	"1m":  30,
	"3m":  90,
	"6m":  180,
	"1y":  365,
	"3y":  1095,
	"5y":  1825,
	"all": 0,
}

// DefaultPeriod is used for unknown period codes.
const DefaultPeriod = "1m"

// Options holds the indicator parameters of a chart.
type Options struct {
	MAPeriods      []int
	RSIPeriod      int
	MACDFast       int
	MACDSlow       int
	MACDSignal     int
	KDJN           int
	KDJM1          int
	KDJM2          int
	BollPeriod     int
	BollMultiplier decimal.Decimal
}

// DefaultOptions returns the conventional chart parameters.
func DefaultOptions() Options {
	return Options{
		MAPeriods:      []int{5, 10, 20},
		RSIPeriod:      calculator.DefaultRSIPeriod,
		MACDFast:       calculator.DefaultMACDFast,
		MACDSlow:       calculator.DefaultMACDSlow,
		MACDSignal:     calculator.DefaultMACDSignal,
		KDJN:           calculator.DefaultKDJPeriod,
		KDJM1:          calculator.DefaultKDJM1,
		KDJM2:          calculator.DefaultKDJM2,
		BollPeriod:     calculator.DefaultBollPeriod,
		BollMultiplier: calculator.DefaultBollMultiplier,
	}
}

// NormalizePeriod returns period if it is a known code, DefaultPeriod otherwise.
func NormalizePeriod(period string) string {
	if _, ok := periodDays[period]; ok {
		return period
	}
	return DefaultPeriod
}

// Window trims series to the chart period ending at asOf.
func Window(series model.PriceSeries, period string, asOf time.Time) model.PriceSeries {
	days := periodDays[NormalizePeriod(period)]
	if days == 0 {
		return series
	}
	return series.Since(asOf.AddDate(0, 0, -days))
}

// Build computes every chart indicator over the whole of series.
// An empty series yields a chart with no indicators.
func Build(series model.PriceSeries, period string, opts Options) (*model.ChartData, error) {
	cd := &model.ChartData{
		FundCode: series.FundCode,
		Period:   NormalizePeriod(period),
		Dates:    make([]string, series.Len()),
		Values:   make([]float64, series.Len()),
		Series:   series,
	}
	for i, p := range series.Points {
		cd.Dates[i] = p.Date.Format(model.DateLayout)
		cd.Values[i] = p.Value.InexactFloat64()
	}
	if series.Len() == 0 {
		return cd, nil
	}

	values := series.Values()
	cd.MA = make(map[int]model.IndicatorSeries, len(opts.MAPeriods))
	for _, p := range opts.MAPeriods {
		ma, err := calculator.CalculateSMA(values, p)
		if err != nil {
			return nil, fmt.Errorf("ma%d: %w", p, err)
		}
		cd.MA[p] = ma
	}

	macd, err := calculator.CalculateMACD(values, opts.MACDFast, opts.MACDSlow, opts.MACDSignal)
	if err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}
	cd.MACD = &macd

	if cd.RSI, err = calculator.CalculateRSI(values, opts.RSIPeriod); err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}

	kdj, err := calculator.CalculateKDJ(values, opts.KDJN, opts.KDJM1, opts.KDJM2)
	if err != nil {
		return nil, fmt.Errorf("kdj: %w", err)
	}
	cd.KDJ = &kdj

	boll, err := calculator.CalculateBollinger(values, opts.BollPeriod, opts.BollMultiplier)
	if err != nil {
		return nil, fmt.Errorf("boll: %w", err)
	}
	cd.Boll = &boll

	return cd, nil
}
