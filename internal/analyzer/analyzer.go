// Package analyzer builds fund reports: it loads a NAV history, draws the
// chart window, summarizes the latest readings, computes risk metrics and
// scores the technical signal.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"FundLens/internal/cache"
	"FundLens/internal/calculator"
	"FundLens/internal/chart"
	"FundLens/internal/logger"
	"FundLens/internal/metrics"
	"FundLens/internal/model"
	"FundLens/internal/navstore"
	"FundLens/internal/strategy"
)

// ErrInvalidConfig wraps indicator parameter errors raised by the engine.
var ErrInvalidConfig = errors.New("invalid indicator configuration")

// Options holds the engine parameters the analyzer applies to every fund.
type Options struct {
	Chart         chart.Options
	RiskFreeRate  decimal.Decimal
	MinRiskPoints int
	RangeLookback int
}

// DefaultOptions returns the conventional parameters.
func DefaultOptions() Options {
	return Options{
		Chart:         chart.DefaultOptions(),
		RiskFreeRate:  calculator.DefaultRiskFreeRate,
		MinRiskPoints: 2,
		RangeLookback: calculator.DefaultRangeLookback,
	}
}

// Analyzer orchestrates source reads and indicator computation.
type Analyzer struct {
	Source  navstore.Source
	Cache   *cache.Cache[*model.Report]
	Metrics *metrics.Metrics
	Log     logger.Logger

	opts Options
	now  func() time.Time
}

// New creates an Analyzer. A nil cache disables caching; nil metrics and
// logger are replaced by private no-op instances.
func New(src navstore.Source, c *cache.Cache[*model.Report], m *metrics.Metrics, log logger.Logger, opts Options) *Analyzer {
	if m == nil {
		m = metrics.New()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Analyzer{
		Source:  src,
		Cache:   c,
		Metrics: m,
		Log:     log,
		opts:    opts,
		now:     time.Now,
	}
}

// SetClock replaces the time source that anchors chart windows.
func (a *Analyzer) SetClock(now func() time.Time) { a.now = now }

// CacheKey identifies one report: fund, chart period and as-of day.
func CacheKey(code, period string, asOf time.Time) string {
	return code + "|" + period + "|" + asOf.Format(model.DateLayout)
}

// Analyze builds the report of one fund over the given chart period.
func (a *Analyzer) Analyze(ctx context.Context, code, period string) (*model.Report, error) {
	period = chart.NormalizePeriod(period)
	asOf := a.now()
	key := CacheKey(code, period, asOf)

	if a.Cache != nil {
		if r, ok := a.Cache.Get(key); ok {
			a.Metrics.CacheRequests.WithLabelValues("hit").Inc()
			a.Log.Info("report served from cache", zap.String("fund_code", code), zap.String("period", period))
			return r, nil
		}
		a.Metrics.CacheRequests.WithLabelValues("miss").Inc()
	}

	r, err := a.build(ctx, code, period, asOf)
	if err != nil {
		result := metrics.ResultError
		if errors.Is(err, navstore.ErrFundNotFound) {
			result = metrics.ResultNotFound
		}
		a.Metrics.ReportsTotal.WithLabelValues(result).Inc()
		return nil, err
	}
	a.Metrics.ReportsTotal.WithLabelValues(metrics.ResultOK).Inc()

	if a.Cache != nil {
		a.Cache.Set(key, r)
	}
	return r, nil
}

func (a *Analyzer) build(ctx context.Context, code, period string, asOf time.Time) (*model.Report, error) {
	full, err := a.Source.LoadSeries(ctx, code, time.Time{}, asOf)
	if err != nil {
		return nil, fmt.Errorf("load series %s: %w", code, err)
	}
	if err := full.Validate(); err != nil {
		return nil, fmt.Errorf("series %s: %w", code, err)
	}

	window := chart.Window(full, period, asOf)
	cd, err := chart.Build(window, period, a.opts.Chart)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Short windows leave the long indicators undefined; the latest readings
	// come from the whole history instead.
	summary := cd
	if window.Len() != full.Len() {
		if summary, err = chart.Build(full, "all", a.opts.Chart); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	snap, err := chart.Summarize(summary, a.opts.RangeLookback)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	report := &model.Report{
		Chart:       cd,
		Snapshot:    snap,
		GeneratedAt: asOf,
	}

	if window.Len() >= a.opts.MinRiskPoints {
		risk := calculator.CalculateRiskMetrics(window.Values(), a.opts.RiskFreeRate)
		report.Risk = &risk
		a.Metrics.MaxDrawdown.WithLabelValues(code).Set(risk.MaxDrawdownPct.InexactFloat64())
		if risk.SharpeRatio.Valid {
			a.Metrics.SharpeRatio.WithLabelValues(code).Set(risk.SharpeRatio.Decimal.InexactFloat64())
		}
		if risk.LowConfidence {
			a.Log.Warn("risk metrics from a short window", zap.String("fund_code", code), zap.Int("points", risk.Points))
		}
	} else {
		a.Log.Warn("too few points for risk metrics",
			zap.String("fund_code", code), zap.Int("points", window.Len()), zap.Int("min_points", a.opts.MinRiskPoints))
	}

	if snap.CurrentValue.Valid {
		report.Signal = strategy.Evaluate(snap)
		a.Metrics.SignalScore.WithLabelValues(code).Set(report.Signal.TotalScore)
	}

	profile, err := a.Source.LoadProfile(ctx, code)
	switch {
	case err == nil:
		report.Profile = profile
	case errors.Is(err, navstore.ErrFundNotFound):
	default:
		a.Log.Warn("load fund profile failed", zap.String("fund_code", code), zap.Error(err))
	}

	a.Metrics.SeriesPoints.WithLabelValues(code).Set(float64(window.Len()))
	a.Log.Info("report built",
		zap.String("fund_code", code),
		zap.String("period", period),
		zap.Int("points", window.Len()),
		zap.Int("history", full.Len()),
	)
	return report, nil
}

// Result is the outcome of one fund in AnalyzeMany.
type Result struct {
	FundCode string
	Report   *model.Report
	Err      error
}

// AnalyzeMany analyzes each fund in turn. A failing fund is logged and
// reported in its Result; the others still run.
func (a *Analyzer) AnalyzeMany(ctx context.Context, codes []string, period string) []Result {
	results := make([]Result, 0, len(codes))
	for _, code := range codes {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{FundCode: code, Err: err})
			continue
		}
		r, err := a.Analyze(ctx, code, period)
		if err != nil {
			a.Log.Error("analyze fund failed", zap.String("fund_code", code), zap.Error(err))
		}
		results = append(results, Result{FundCode: code, Report: r, Err: err})
	}
	return results
}
