package exchange

import (
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNegativeRate occurs when commission or slippage is configured
// below zero
var ErrNegativeRate = errors.New("commission and slippage rates cannot be negative")

// Exchange simulates execution of orders against daily bars. Fills are
// fully determined by the order, the bar and these rates, keeping
// executions reproducible
type Exchange struct {
	commissionRate    decimal.Decimal
	minimumCommission decimal.Decimal
	slippageRate      decimal.Decimal
	log               *zap.Logger
}
