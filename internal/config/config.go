package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"FundLens/internal/calculator"
	"FundLens/internal/chart"
	"FundLens/internal/navstore"
)

// EnvPrefix prefixes every environment override, e.g.
// FUNDLENS_SOURCE_SQLITE_PATH. The unprefixed tag name (SQLITE_PATH) is
// accepted as well.
const EnvPrefix = "FUNDLENS"

// Config holds all application configuration.
type Config struct {
	Source struct {
		Driver     string `yaml:"driver" envconfig:"DRIVER"`
		SQLitePath string `yaml:"sqlite_path" envconfig:"SQLITE_PATH"`
		CSVDir     string `yaml:"csv_dir" envconfig:"CSV_DIR"`
	} `yaml:"source" envconfig:"SOURCE"`
	Indicators struct {
		MAPeriods      []int   `yaml:"ma_periods" envconfig:"MA_PERIODS"`
		RSIPeriod      int     `yaml:"rsi_period" envconfig:"RSI_PERIOD"`
		MACDFast       int     `yaml:"macd_fast" envconfig:"MACD_FAST"`
		MACDSlow       int     `yaml:"macd_slow" envconfig:"MACD_SLOW"`
		MACDSignal     int     `yaml:"macd_signal" envconfig:"MACD_SIGNAL"`
		KDJN           int     `yaml:"kdj_n" envconfig:"KDJ_N"`
		KDJM1          int     `yaml:"kdj_m1" envconfig:"KDJ_M1"`
		KDJM2          int     `yaml:"kdj_m2" envconfig:"KDJ_M2"`
		BollPeriod     int     `yaml:"boll_period" envconfig:"BOLL_PERIOD"`
		BollMultiplier float64 `yaml:"boll_multiplier" envconfig:"BOLL_MULTIPLIER"`
	} `yaml:"indicators" envconfig:"INDICATORS"`
	Risk struct {
		RiskFreeRate  *float64 `yaml:"risk_free_rate" envconfig:"RISK_FREE_RATE"`
		MinPoints     int      `yaml:"min_points" envconfig:"MIN_POINTS"`
		RangeLookback int      `yaml:"range_lookback" envconfig:"RANGE_LOOKBACK"`
	} `yaml:"risk" envconfig:"RISK"`
	Cache struct {
		TTL         time.Duration `yaml:"ttl" envconfig:"CACHE_TTL"`
		JanitorCron string        `yaml:"janitor_cron" envconfig:"CACHE_JANITOR_CRON"`
	} `yaml:"cache" envconfig:"CACHE"`
	Log struct {
		Level    string `yaml:"level" envconfig:"LOG_LEVEL"`
		Encoding string `yaml:"encoding" envconfig:"LOG_ENCODING"`
	} `yaml:"log" envconfig:"LOG"`
	Metrics struct {
		Textfile string `yaml:"textfile" envconfig:"METRICS_TEXTFILE"`
	} `yaml:"metrics" envconfig:"METRICS"`
	Period string `yaml:"period" envconfig:"PERIOD"`
}

// Load reads .env (if any), then the YAML file at path, then environment
// overrides, then fills defaults. A missing YAML file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Source.Driver == "" {
		c.Source.Driver = "sqlite"
	}
	if c.Source.SQLitePath == "" {
		c.Source.SQLitePath = "data/fund_tracker.db"
	}
	if c.Source.CSVDir == "" {
		c.Source.CSVDir = "data/nav"
	}

	ind := &c.Indicators
	if len(ind.MAPeriods) == 0 {
		ind.MAPeriods = []int{5, 10, 20}
	}
	if ind.RSIPeriod == 0 {
		ind.RSIPeriod = calculator.DefaultRSIPeriod
	}
	if ind.MACDFast == 0 {
		ind.MACDFast = calculator.DefaultMACDFast
	}
	if ind.MACDSlow == 0 {
		ind.MACDSlow = calculator.DefaultMACDSlow
	}
	if ind.MACDSignal == 0 {
		ind.MACDSignal = calculator.DefaultMACDSignal
	}
	if ind.KDJN == 0 {
		ind.KDJN = calculator.DefaultKDJPeriod
	}
	if ind.KDJM1 == 0 {
		ind.KDJM1 = calculator.DefaultKDJM1
	}
	if ind.KDJM2 == 0 {
		ind.KDJM2 = calculator.DefaultKDJM2
	}
	if ind.BollPeriod == 0 {
		ind.BollPeriod = calculator.DefaultBollPeriod
	}
	if ind.BollMultiplier == 0 {
		ind.BollMultiplier = calculator.DefaultBollMultiplier.InexactFloat64()
	}

	if c.Risk.RiskFreeRate == nil {
		rf := calculator.DefaultRiskFreeRate.InexactFloat64()
		c.Risk.RiskFreeRate = &rf
	}
	if c.Risk.MinPoints == 0 {
		c.Risk.MinPoints = 2
	}
	if c.Risk.RangeLookback == 0 {
		c.Risk.RangeLookback = calculator.DefaultRangeLookback
	}

	if c.Cache.TTL == 0 {
		c.Cache.TTL = 10 * time.Minute
	}
	if c.Cache.JanitorCron == "" {
		c.Cache.JanitorCron = "0 */5 * * * *"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Encoding == "" {
		c.Log.Encoding = "json"
	}
	if c.Period == "" {
		c.Period = chart.DefaultPeriod
	}
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	switch c.Source.Driver {
	case "sqlite":
		if c.Source.SQLitePath == "" {
			return fmt.Errorf("source.sqlite_path is required")
		}
	case "csv":
		if c.Source.CSVDir == "" {
			return fmt.Errorf("source.csv_dir is required")
		}
	default:
		return fmt.Errorf("source.driver must be sqlite or csv, got %q", c.Source.Driver)
	}

	ind := c.Indicators
	for _, p := range ind.MAPeriods {
		if p <= 0 {
			return fmt.Errorf("indicators.ma_periods must be positive, got %d", p)
		}
	}
	if ind.MACDFast >= ind.MACDSlow {
		return fmt.Errorf("indicators.macd_fast (%d) must be below macd_slow (%d)", ind.MACDFast, ind.MACDSlow)
	}
	if ind.BollMultiplier < 0 {
		return fmt.Errorf("indicators.boll_multiplier must not be negative")
	}

	if *c.Risk.RiskFreeRate <= -1 {
		return fmt.Errorf("risk.risk_free_rate must be above -1")
	}
	if c.Risk.MinPoints < 2 {
		return fmt.Errorf("risk.min_points must be at least 2")
	}
	if c.Risk.RangeLookback <= 0 {
		return fmt.Errorf("risk.range_lookback must be positive")
	}

	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	if c.Log.Encoding != "json" && c.Log.Encoding != "console" {
		return fmt.Errorf("log.encoding must be json or console, got %q", c.Log.Encoding)
	}
	return nil
}

// SourceOptions returns the navstore settings.
func (c *Config) SourceOptions() navstore.Options {
	return navstore.Options{
		Driver:     c.Source.Driver,
		SQLitePath: c.Source.SQLitePath,
		CSVDir:     c.Source.CSVDir,
	}
}

// ChartOptions returns the indicator parameters of the chart builder.
func (c *Config) ChartOptions() chart.Options {
	ind := c.Indicators
	return chart.Options{
		MAPeriods:      append([]int(nil), ind.MAPeriods...),
		RSIPeriod:      ind.RSIPeriod,
		MACDFast:       ind.MACDFast,
		MACDSlow:       ind.MACDSlow,
		MACDSignal:     ind.MACDSignal,
		KDJN:           ind.KDJN,
		KDJM1:          ind.KDJM1,
		KDJM2:          ind.KDJM2,
		BollPeriod:     ind.BollPeriod,
		BollMultiplier: decimal.NewFromFloat(ind.BollMultiplier),
	}
}

// RiskFreeRate returns the configured annual risk-free rate.
func (c *Config) RiskFreeRate() decimal.Decimal {
	return decimal.NewFromFloat(*c.Risk.RiskFreeRate)
}
