// Package config loads and validates run configuration. Validation
// failures are fatal: a run never starts on a config that breaks the
// ledger's or sizer's preconditions
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const dateFormat = "2006-01-02"

// defaults mirror a conservative simulation: 0.1% commission with a
// dollar floor, half a basis point of slippage, positions capped at a
// fifth of the book
func setDefaults(v *viper.Viper) {
	v.SetDefault("initial-capital", 100000.0)
	v.SetDefault("commission-rate", 0.001)
	v.SetDefault("minimum-commission", 1.0)
	v.SetDefault("slippage-rate", 0.0005)
	v.SetDefault("max-position-fraction", 0.2)
	v.SetDefault("risk-free-rate", 0.02)
	v.SetDefault("default-signal-price", 100.0)
	v.SetDefault("rng-seed", 42)
	v.SetDefault("strategy.name", "momentum")
}

// ReadConfigFromFile loads, unmarshals and validates the config at path
func ReadConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config %v: %w", path, err)
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %v: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a validated config with all defaults applied, useful
// for programmatic assembly
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// defaults always unmarshal cleanly
	_ = v.Unmarshal(cfg)
	return cfg
}

// Validate enforces the fatal configuration rules
func (c *Config) Validate() error {
	if c.InitialCapital <= 0 {
		return ErrBadInitialCapital
	}
	if c.CommissionRate < 0 || c.MinimumCommission < 0 || c.SlippageRate < 0 {
		return ErrBadRate
	}
	if c.MaxPositionFraction <= 0 || c.MaxPositionFraction > 1 {
		return ErrBadPositionFraction
	}
	if c.DefaultSignalPrice <= 0 {
		return ErrBadDefaultPrice
	}
	if len(c.Data.Symbols) == 0 {
		return ErrNoSymbols
	}
	if _, err := c.StartDate(); err != nil {
		return err
	}
	if _, err := c.EndDate(); err != nil {
		return err
	}
	return nil
}

// StartDate parses the configured start date, zero when unset
func (c *Config) StartDate() (time.Time, error) {
	return parseDate(c.Data.StartDate)
}

// EndDate parses the configured end date, zero when unset
func (c *Config) EndDate() (time.Time, error) {
	return parseDate(c.Data.EndDate)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrBadDate, s)
	}
	return t.UTC(), nil
}
