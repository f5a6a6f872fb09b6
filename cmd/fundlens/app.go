package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"FundLens/internal/analyzer"
	"FundLens/internal/cache"
	"FundLens/internal/config"
	"FundLens/internal/logger"
	"FundLens/internal/metrics"
	"FundLens/internal/model"
	"FundLens/internal/navstore"
)

// configPath is set by the global -config flag.
var configPath string

func defaultConfigPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

// app bundles the collaborators every subcommand needs.
type app struct {
	cfg      *config.Config
	log      logger.Logger
	metrics  *metrics.Metrics
	source   navstore.Source
	analyzer *analyzer.Analyzer

	stopJanitor func()
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	log, err := logger.NewZapLogger(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	src, err := navstore.Open(cfg.SourceOptions())
	if err != nil {
		return nil, fmt.Errorf("open %s source: %w", cfg.Source.Driver, err)
	}
	log.Info("nav source opened", zap.String("driver", cfg.Source.Driver))

	m := metrics.New()
	reports := cache.New[*model.Report](cfg.Cache.TTL)
	stop, err := reports.StartJanitor(cfg.Cache.JanitorCron, func(n int) {
		m.CachePurged.Add(float64(n))
		if n > 0 {
			log.Info("cache entries purged", zap.Int("count", n))
		}
	})
	if err != nil {
		src.Close()
		return nil, err
	}

	a := analyzer.New(src, reports, m, log, analyzer.Options{
		Chart:         cfg.ChartOptions(),
		RiskFreeRate:  cfg.RiskFreeRate(),
		MinRiskPoints: cfg.Risk.MinPoints,
		RangeLookback: cfg.Risk.RangeLookback,
	})

	return &app{
		cfg:         cfg,
		log:         log,
		metrics:     m,
		source:      src,
		analyzer:    a,
		stopJanitor: stop,
	}, nil
}

// period returns flagValue, or the configured default when it is empty.
func (a *app) period(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return a.cfg.Period
}

func (a *app) Close() {
	a.stopJanitor()
	if path := a.cfg.Metrics.Textfile; path != "" {
		if err := a.metrics.WriteTextfile(path); err != nil {
			a.log.Error("write metrics", zap.Error(err))
		}
	}
	if err := a.source.Close(); err != nil {
		a.log.Error("close source", zap.Error(err))
	}
	_ = a.log.Sync()
}
