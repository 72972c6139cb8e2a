// Package momentum implements a moving average crossover strategy with
// RSI and volume confirmation. A fast average crossing above the slow
// one raises a buy when RSI is not already overbought and volume backs
// the move; the reverse cross raises a sell
package momentum

import (
	"fmt"

	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/strategies/base"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/event"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/kline"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/signal"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gct-ta/indicators"
)

const (
	// Name is the strategy name
	Name              = "momentum"
	shortPeriodKey    = "short-ma-period"
	longPeriodKey     = "long-ma-period"
	rsiPeriodKey      = "rsi-period"
	rsiLowKey         = "rsi-low"
	rsiHighKey        = "rsi-high"
	volumePeriodKey   = "volume-ma-period"
	minVolumeRatioKey = "min-volume-ratio"
	description       = `Momentum trades continuation of price trends. A fast simple moving average crossing its slow counterpart signals entry or exit, gated by the relative strength index to avoid chasing exhausted moves and by volume to require participation behind the cross`
)

// Strategy is an implementation of the strategies Handler interface
type Strategy struct {
	base.Strategy
	shortPeriod    int
	longPeriod     int
	rsiPeriod      int
	rsiLow         decimal.Decimal
	rsiHigh        decimal.Decimal
	volumePeriod   int
	minVolumeRatio decimal.Decimal
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides a nice overview of the strategy
func (s *Strategy) Description() string {
	return description
}

// SetDefaults sets the custom settings to their default values
func (s *Strategy) SetDefaults() {
	s.shortPeriod = 10
	s.longPeriod = 20
	s.rsiPeriod = 14
	s.rsiLow = decimal.NewFromInt(30)
	s.rsiHigh = decimal.NewFromInt(70)
	s.volumePeriod = 20
	s.minVolumeRatio = decimal.NewFromFloat(1.2)
}

// SetCustomSettings allows the moving average, RSI and volume gates to
// be adjusted per run
func (s *Strategy) SetCustomSettings(settings map[string]any) error {
	for k, v := range settings {
		value, ok := v.(float64)
		if !ok {
			return fmt.Errorf("%w: %v value %v could not be parsed", base.ErrInvalidCustomSettings, k, v)
		}
		switch k {
		case shortPeriodKey:
			s.shortPeriod = int(value)
		case longPeriodKey:
			s.longPeriod = int(value)
		case rsiPeriodKey:
			s.rsiPeriod = int(value)
		case rsiLowKey:
			s.rsiLow = decimal.NewFromFloat(value)
		case rsiHighKey:
			s.rsiHigh = decimal.NewFromFloat(value)
		case volumePeriodKey:
			s.volumePeriod = int(value)
		case minVolumeRatioKey:
			s.minVolumeRatio = decimal.NewFromFloat(value)
		default:
			return fmt.Errorf("%w: unrecognised key %v", base.ErrInvalidCustomSettings, k)
		}
	}
	return nil
}

// Initialize validates the configured gates before the run starts
func (s *Strategy) Initialize() error {
	if s.longPeriod == 0 {
		s.SetDefaults()
	}
	if s.shortPeriod <= 0 || s.longPeriod <= 0 || s.rsiPeriod <= 0 || s.volumePeriod <= 0 {
		return fmt.Errorf("%w: periods must be positive", base.ErrInvalidCustomSettings)
	}
	if s.shortPeriod >= s.longPeriod {
		return fmt.Errorf("%w: short period %v must be less than long period %v",
			base.ErrInvalidCustomSettings, s.shortPeriod, s.longPeriod)
	}
	if s.rsiLow.GreaterThanOrEqual(s.rsiHigh) {
		return fmt.Errorf("%w: rsi-low must be less than rsi-high", base.ErrInvalidCustomSettings)
	}
	s.MarkInitialized()
	return nil
}

// OnBar observes the day's bar and raises at most one signal for the
// symbol once enough history exists to evaluate both averages
func (s *Strategy) OnBar(k *kline.Kline) ([]*signal.Signal, error) {
	if k == nil {
		return nil, common.ErrNilEvent
	}
	if !s.IsInitialized() {
		return nil, base.ErrNotInitialized
	}
	s.ObserveBar(k)

	closes := s.Closes(k.GetSymbol())
	if len(closes) <= s.longPeriod {
		return nil, nil
	}
	direction := s.crossoverDirection(closes)
	if !direction.IsActionable() {
		return nil, nil
	}
	if !s.rsiPermits(direction, closes) {
		return nil, nil
	}

	sig := &signal.Signal{
		Base: &event.Base{
			Offset: k.GetOffset(),
			Time:   k.GetTime(),
			Symbol: k.GetSymbol(),
		},
		Direction: direction,
		Strength:  s.strength(k),
		Price:     k.GetClosePrice(),
	}
	sig.AppendReasonf("%v period SMA crossed %v period SMA", s.shortPeriod, s.longPeriod)
	s.RecordSignal(sig)
	return []*signal.Signal{sig}, nil
}

// crossoverDirection detects a fast/slow average cross on the latest
// observation
func (s *Strategy) crossoverDirection(closes []float64) common.Direction {
	fast := indicators.SMA(closes, s.shortPeriod)
	slow := indicators.SMA(closes, s.longPeriod)
	if len(fast) < 2 || len(slow) < 2 {
		return common.Hold
	}
	fastNow, fastPrev := fast[len(fast)-1], fast[len(fast)-2]
	slowNow, slowPrev := slow[len(slow)-1], slow[len(slow)-2]
	switch {
	case fastNow > slowNow && fastPrev <= slowPrev:
		return common.Buy
	case fastNow < slowNow && fastPrev >= slowPrev:
		return common.Sell
	}
	return common.Hold
}

// rsiPermits blocks entries into exhausted moves: no buying once
// overbought, no selling once oversold
func (s *Strategy) rsiPermits(direction common.Direction, closes []float64) bool {
	if len(closes) <= s.rsiPeriod {
		return false
	}
	rsi := indicators.RSI(closes, s.rsiPeriod)
	latest := decimal.NewFromFloat(rsi[len(rsi)-1])
	if direction == common.Buy {
		return latest.LessThan(s.rsiHigh)
	}
	return latest.GreaterThan(s.rsiLow)
}

// strength grades conviction from volume participation behind the cross
func (s *Strategy) strength(k *kline.Kline) decimal.Decimal {
	strength := decimal.NewFromFloat(0.5)
	volumes := s.Volumes(k.GetSymbol())
	if len(volumes) < s.volumePeriod {
		return strength
	}
	volumeMA := indicators.SMA(volumes, s.volumePeriod)
	average := decimal.NewFromFloat(volumeMA[len(volumeMA)-1])
	if average.IsPositive() &&
		k.GetVolume().GreaterThanOrEqual(average.Mul(s.minVolumeRatio)) {
		strength = decimal.NewFromInt(1)
	}
	return strength
}
