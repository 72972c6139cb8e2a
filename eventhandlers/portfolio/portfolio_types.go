package portfolio

import (
	"errors"

	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/portfolio/holdings"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/portfolio/size"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// ErrNoCapital occurs when a portfolio is created without positive
	// starting capital
	ErrNoCapital = errors.New("initial capital must be greater than zero")
	// ErrNegativeCommission occurs on a commission rate below zero
	ErrNegativeCommission = errors.New("commission rate cannot be negative")
	// ErrNilSizeManager occurs when no sizing rules are supplied
	ErrNilSizeManager = errors.New("nil size manager received")
)

// Portfolio is the cash and position ledger for one run. It is owned
// exclusively by the engine and mutated only through ExecuteFill and
// UpdateMarketValue
type Portfolio struct {
	initialCapital decimal.Decimal
	commissionRate decimal.Decimal
	sizeManager    *size.Size
	log            *zap.Logger

	cash       decimal.Decimal
	positions  map[string]decimal.Decimal
	lastPrices map[string]decimal.Decimal
	history    []holdings.Snapshot
}
