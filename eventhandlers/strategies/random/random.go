// Package random raises signals by drawing from the injected seeded
// random source. It exists to demonstrate and test run reproducibility:
// two runs with the same seed emit identical signal sequences
package random

import (
	"fmt"

	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/strategies/base"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/event"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/kline"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/signal"
	"github.com/shopspring/decimal"
)

const (
	// Name is the strategy name
	Name         = "random"
	tradeProbKey = "trade-probability"
	description  = `Random draws a direction from the run's seeded random source on every bar. It produces no edge and exists for demonstrating deterministic replay and as a baseline against real strategies`
)

// Strategy is an implementation of the strategies Handler interface
type Strategy struct {
	base.Strategy
	tradeProbability float64
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
	s.tradeProbability = 0.1
}

// SetCustomSettings allows the per-bar trade probability to be adjusted
func (s *Strategy) SetCustomSettings(settings map[string]any) error {
	for k, v := range settings {
		switch k {
		case tradeProbKey:
			p, ok := v.(float64)
			if !ok || p < 0 || p > 1 {
				return fmt.Errorf("%w: %v value %v must be a probability", base.ErrInvalidCustomSettings, k, v)
			}
			s.tradeProbability = p
		default:
			return fmt.Errorf("%w: unrecognised key %v", base.ErrInvalidCustomSettings, k)
		}
	}
	return nil
}

// Initialize requires the seeded random source to have been injected,
// otherwise runs would not be reproducible
func (s *Strategy) Initialize() error {
	if s.tradeProbability == 0 {
		s.SetDefaults()
	}
	if s.Rand() == nil {
		return fmt.Errorf("%w: no random source injected", base.ErrInvalidCustomSettings)
	}
	s.MarkInitialized()
	return nil
}

// OnBar draws once per bar: below the trade probability it flips a
// second draw between buy and sell, otherwise it stays out
func (s *Strategy) OnBar(k *kline.Kline) ([]*signal.Signal, error) {
	if k == nil {
		return nil, common.ErrNilEvent
	}
	if !s.IsInitialized() {
		return nil, base.ErrNotInitialized
	}
	s.ObserveBar(k)

	if s.Rand().Float64() >= s.tradeProbability {
		return nil, nil
	}
	direction := common.Buy
	if s.Rand().Float64() < 0.5 {
		direction = common.Sell
	}
	sig := &signal.Signal{
		Base: &event.Base{
			Offset: k.GetOffset(),
			Time:   k.GetTime(),
			Symbol: k.GetSymbol(),
		},
		Direction: direction,
		Strength:  decimal.NewFromFloat(0.5),
		Price:     k.GetClosePrice(),
	}
	sig.AppendReason("random draw")
	s.RecordSignal(sig)
	return []*signal.Signal{sig}, nil
}
