package size

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrBadFraction occurs when the configured position fraction is
	// outside (0, 1]
	ErrBadFraction = errors.New("maximum position fraction must be within (0, 1]")
	// ErrNoPrice occurs when a signal carries no price and no default
	// price is configured to size against
	ErrNoPrice = errors.New("no price available to size order")
)

// Size converts signals into sized orders. MaxPositionFraction caps a
// single position at that fraction of total portfolio value.
// DefaultPrice is the explicit fallback used when a signal carries no
// price; it must be configured, there is no silent constant
type Size struct {
	MaxPositionFraction decimal.Decimal
	DefaultPrice        decimal.Decimal
}
