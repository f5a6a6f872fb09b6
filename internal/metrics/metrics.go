// Package metrics collects run statistics on a private Prometheus registry.
// FundLens is a one-shot CLI, so the registry is exported through the node
// exporter textfile format rather than served.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Report outcomes.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics holds every collector FundLens records.
type Metrics struct {
	registry *prometheus.Registry

	ReportsTotal  *prometheus.CounterVec
	CacheRequests *prometheus.CounterVec
	CachePurged   prometheus.Counter
	SeriesPoints  *prometheus.GaugeVec
	SharpeRatio   *prometheus.GaugeVec
	MaxDrawdown   *prometheus.GaugeVec
	SignalScore   *prometheus.GaugeVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ReportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fundlens_reports_total",
				Help: "Fund reports built, by result.",
			},
			[]string{"result"},
		),
		CacheRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fundlens_cache_requests_total",
				Help: "Report cache lookups, by outcome (hit or miss).",
			},
			[]string{"outcome"},
		),
		CachePurged: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "fundlens_cache_purged_total",
				Help: "Expired report cache entries removed by the janitor.",
			},
		),
		SeriesPoints: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fundlens_series_points",
				Help: "NAV observations in the analysed window, per fund.",
			},
			[]string{"fund_code"},
		),
		SharpeRatio: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fundlens_sharpe_ratio",
				Help: "Latest Sharpe ratio per fund.",
			},
			[]string{"fund_code"},
		),
		MaxDrawdown: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fundlens_max_drawdown_pct",
				Help: "Latest maximum drawdown in percent per fund.",
			},
			[]string{"fund_code"},
		),
		SignalScore: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fundlens_signal_score",
				Help: "Weighted technical signal score per fund.",
			},
			[]string{"fund_code"},
		),
	}
	m.registry.MustRegister(
		m.ReportsTotal, m.CacheRequests, m.CachePurged,
		m.SeriesPoints, m.SharpeRatio, m.MaxDrawdown, m.SignalScore,
	)
	return m
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes every metric to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
