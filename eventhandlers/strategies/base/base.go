// Package base carries the state shared by all strategies: generated
// signal history, a position tracking view maintained through engine
// callbacks, observed bar history for indicator calculations, and the
// injected logger and random source
package base

import (
	"math/rand"

	"github.com/Joseph-Carlucci/quant-platform/eventtypes/kline"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/signal"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SetLogger injects the logger used by the strategy. A nil logger is
// replaced with a no-op one
func (s *Strategy) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
}

// Logger returns the injected logger, never nil
func (s *Strategy) Logger() *zap.Logger {
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s.log
}

// SetRand injects the seeded random source. Strategies must draw all
// randomness from here so identical seeds reproduce identical runs
func (s *Strategy) SetRand(rng *rand.Rand) {
	s.rng = rng
}

// Rand returns the injected random source, nil when none was set
func (s *Strategy) Rand() *rand.Rand {
	return s.rng
}

// MarkInitialized flags the strategy ready to generate signals
func (s *Strategy) MarkInitialized() {
	s.initialized = true
}

// IsInitialized returns whether Initialize has completed
func (s *Strategy) IsInitialized() bool {
	return s.initialized
}

// RecordSignal appends to the strategy's signal history, which becomes
// part of the run result
func (s *Strategy) RecordSignal(sig *signal.Signal) {
	s.signals = append(s.signals, sig)
}

// Signals returns every signal the strategy has raised this run
func (s *Strategy) Signals() []*signal.Signal {
	return s.signals
}

// ObserveBar appends the bar's close and volume to the per-symbol
// history strategies calculate indicators over. Only bars already
// handed to the strategy are observable, so indicator lookbacks can
// never see ahead of the current day
func (s *Strategy) ObserveBar(k *kline.Kline) {
	if k == nil {
		return
	}
	if s.closes == nil {
		s.closes = make(map[string][]float64)
		s.volumes = make(map[string][]float64)
	}
	symbol := k.GetSymbol()
	s.closes[symbol] = append(s.closes[symbol], k.Close.InexactFloat64())
	s.volumes[symbol] = append(s.volumes[symbol], k.Volume.InexactFloat64())
}

// Closes returns the observed close history for the symbol
func (s *Strategy) Closes(symbol string) []float64 {
	return s.closes[symbol]
}

// Volumes returns the observed volume history for the symbol
func (s *Strategy) Volumes(symbol string) []float64 {
	return s.volumes[symbol]
}

// OnPositionOpened records the opened position in the strategy's view
func (s *Strategy) OnPositionOpened(p Position) {
	if s.positions == nil {
		s.positions = make(map[string]*Position)
	}
	s.positions[p.Symbol] = &p
	s.Logger().Info("position opened",
		zap.String("symbol", p.Symbol),
		zap.String("quantity", p.Quantity.String()),
		zap.String("entry-price", p.EntryPrice.String()))
}

// OnPositionClosed removes the position from the strategy's view
func (s *Strategy) OnPositionClosed(p Position, realizedPnL decimal.Decimal) {
	delete(s.positions, p.Symbol)
	s.Logger().Info("position closed",
		zap.String("symbol", p.Symbol),
		zap.String("realized-pnl", realizedPnL.String()))
}

// UpdatePositions refreshes current prices and unrealised profit on the
// tracked positions
func (s *Strategy) UpdatePositions(prices map[string]decimal.Decimal) {
	for symbol, p := range s.positions {
		price, ok := prices[symbol]
		if !ok {
			continue
		}
		p.CurrentPrice = price
		p.UnrealizedPnL = price.Sub(p.EntryPrice).Mul(p.Quantity)
	}
}

// GetPosition returns the tracked position for the symbol, nil when flat
func (s *Strategy) GetPosition(symbol string) *Position {
	return s.positions[symbol]
}

// PositionSize returns the tracked signed quantity, zero when flat
func (s *Strategy) PositionSize(symbol string) decimal.Decimal {
	if p, ok := s.positions[symbol]; ok {
		return p.Quantity
	}
	return decimal.Zero
}

// IsLong returns whether the tracked position in the symbol is long
func (s *Strategy) IsLong(symbol string) bool {
	return s.PositionSize(symbol).GreaterThan(decimal.Zero)
}

// IsShort returns whether the tracked position in the symbol is short
func (s *Strategy) IsShort(symbol string) bool {
	return s.PositionSize(symbol).LessThan(decimal.Zero)
}

// IsFlat returns whether there is no tracked position in the symbol
func (s *Strategy) IsFlat(symbol string) bool {
	return s.PositionSize(symbol).IsZero()
}

// Reset clears all run state so the strategy can be reused
func (s *Strategy) Reset() {
	s.initialized = false
	s.signals = nil
	s.positions = nil
	s.closes = nil
	s.volumes = nil
}
