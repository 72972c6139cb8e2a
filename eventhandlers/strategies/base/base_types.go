package base

import (
	"errors"
	"math/rand"
	"time"

	"github.com/Joseph-Carlucci/quant-platform/eventtypes/signal"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCustomSettings used when bad custom settings are
	// supplied to a strategy
	ErrInvalidCustomSettings = errors.New("invalid custom settings")
	// ErrNotInitialized occurs when a strategy is asked to act before
	// Initialize has run
	ErrNotInitialized = errors.New("strategy not initialized")
)

// Position is the strategy-side view of an open holding. It is distinct
// from the portfolio ledger, which only tracks raw signed quantities
type Position struct {
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	EntryPrice    decimal.Decimal `json:"entry-price"`
	EntryTime     time.Time       `json:"entry-time"`
	CurrentPrice  decimal.Decimal `json:"current-price"`
	UnrealizedPnL decimal.Decimal `json:"unrealized-pnl"`
}

// Strategy is the shared state every bundled strategy embeds: signal
// history, the position tracking view and the injected collaborators
type Strategy struct {
	initialized bool
	log         *zap.Logger
	rng         *rand.Rand
	signals     []*signal.Signal
	positions   map[string]*Position
	closes      map[string][]float64
	volumes     map[string][]float64
}
