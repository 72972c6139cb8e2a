package config

import (
	"errors"
)

var (
	// ErrBadInitialCapital occurs when initial capital is not positive
	ErrBadInitialCapital = errors.New("initial-capital must be greater than zero")
	// ErrBadRate occurs when a commission or slippage rate is negative
	ErrBadRate = errors.New("commission and slippage rates cannot be negative")
	// ErrBadPositionFraction occurs when the position fraction is
	// outside (0, 1]
	ErrBadPositionFraction = errors.New("max-position-fraction must be within (0, 1]")
	// ErrBadDefaultPrice occurs when no usable sizing fallback price is
	// configured
	ErrBadDefaultPrice = errors.New("default-signal-price must be greater than zero")
	// ErrNoSymbols occurs when the data section lists no symbols
	ErrNoSymbols = errors.New("data.symbols must list at least one symbol")
	// ErrBadDate occurs when a date cannot be parsed
	ErrBadDate = errors.New("dates must be in YYYY-MM-DD format")
)

// Config is one run's full configuration
type Config struct {
	InitialCapital      float64          `mapstructure:"initial-capital"`
	CommissionRate      float64          `mapstructure:"commission-rate"`
	MinimumCommission   float64          `mapstructure:"minimum-commission"`
	SlippageRate        float64          `mapstructure:"slippage-rate"`
	MaxPositionFraction float64          `mapstructure:"max-position-fraction"`
	RiskFreeRate        float64          `mapstructure:"risk-free-rate"`
	DefaultSignalPrice  float64          `mapstructure:"default-signal-price"`
	RNGSeed             int64            `mapstructure:"rng-seed"`
	BenchmarkCSV        string           `mapstructure:"benchmark-csv"`
	Strategy            StrategySettings `mapstructure:"strategy"`
	Data                DataSettings     `mapstructure:"data"`
}

// StrategySettings selects and tunes the strategy for the run
type StrategySettings struct {
	Name           string         `mapstructure:"name"`
	CustomSettings map[string]any `mapstructure:"custom-settings"`
}

// DataSettings locates the bar data for the run
type DataSettings struct {
	Dir       string   `mapstructure:"dir"`
	Symbols   []string `mapstructure:"symbols"`
	StartDate string   `mapstructure:"start-date"`
	EndDate   string   `mapstructure:"end-date"`
}
