package strategies

import (
	"errors"
	"math/rand"

	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/strategies/base"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/kline"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/signal"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrStrategyNotFound used when a strategy name cannot be resolved
var ErrStrategyNotFound = errors.New("strategy not found")

// Handler defines all functions required for the engine to drive a
// strategy. OnBar is called once per symbol per trading day with that
// symbol's bar; position callbacks fire when the engine's fills open or
// fully close a holding
type Handler interface {
	Name() string
	Description() string
	Initialize() error
	SetCustomSettings(map[string]any) error
	SetDefaults()
	OnBar(*kline.Kline) ([]*signal.Signal, error)
	OnPositionOpened(base.Position)
	OnPositionClosed(base.Position, decimal.Decimal)
	UpdatePositions(map[string]decimal.Decimal)
	Signals() []*signal.Signal
	SetLogger(*zap.Logger)
	SetRand(*rand.Rand)
	Reset()
}
