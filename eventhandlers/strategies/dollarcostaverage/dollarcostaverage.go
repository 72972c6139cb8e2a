// Package dollarcostaverage raises a buy signal on every bar. It is
// the simplest possible strategy and doubles as a deterministic
// reference in engine tests
package dollarcostaverage

import (
	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/strategies/base"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/event"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/kline"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/signal"
	"github.com/shopspring/decimal"
)

// Name is the strategy name
const Name = "dollarcostaverage"

const description = `Dollar cost averaging raises a full-strength buy on every bar regardless of price. Position sizing never adds to an open holding, so the first affordable buy opens the position and the strategy stays invested for the rest of the run`

// Strategy is an implementation of the strategies Handler interface
type Strategy struct {
	base.Strategy
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides a nice overview of the strategy
func (s *Strategy) Description() string {
	return description
}

// SetDefaults is a no-op; the strategy has no settings
func (s *Strategy) SetDefaults() {}

// SetCustomSettings rejects all custom settings
func (s *Strategy) SetCustomSettings(settings map[string]any) error {
	if len(settings) > 0 {
		return base.ErrInvalidCustomSettings
	}
	return nil
}

// Initialize marks the strategy ready; there is nothing to validate
func (s *Strategy) Initialize() error {
	s.MarkInitialized()
	return nil
}

// OnBar always raises a full-strength buy at the bar's close
func (s *Strategy) OnBar(k *kline.Kline) ([]*signal.Signal, error) {
	if k == nil {
		return nil, common.ErrNilEvent
	}
	if !s.IsInitialized() {
		return nil, base.ErrNotInitialized
	}
	s.ObserveBar(k)

	sig := &signal.Signal{
		Base: &event.Base{
			Offset: k.GetOffset(),
			Time:   k.GetTime(),
			Symbol: k.GetSymbol(),
		},
		Direction: common.Buy,
		Strength:  decimal.NewFromInt(1),
		Price:     k.GetClosePrice(),
	}
	sig.AppendReason("dollar cost averaging buys on every bar")
	s.RecordSignal(sig)
	return []*signal.Signal{sig}, nil
}
