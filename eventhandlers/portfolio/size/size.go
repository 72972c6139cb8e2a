package size

import (
	"fmt"

	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/event"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/order"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/signal"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// SizeSignal resolves a signal into at most one order given the
// portfolio's total value and the current signed position in the
// signal's symbol. A nil order with nil error means the signal resolved
// to no action.
//
// Direction policy: a buy from flat or short opens or covers with the
// full target quantity; a buy while long never adds to the position. A
// sell from flat opens a short of the target quantity; a sell while
// long closes exactly the held quantity; a sell while short is a no-op.
// Positions are never pyramided, a deliberate simplicity constraint
func (s *Size) SizeSignal(sig signal.Event, totalValue, currentPosition decimal.Decimal) (*order.Order, error) {
	if sig == nil {
		return nil, common.ErrNilEvent
	}
	if s.MaxPositionFraction.LessThanOrEqual(decimal.Zero) ||
		s.MaxPositionFraction.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrBadFraction
	}
	direction := sig.GetDirection()
	if !direction.IsActionable() {
		return nil, nil
	}

	price := sig.GetPrice()
	if price.LessThanOrEqual(decimal.Zero) {
		price = s.DefaultPrice
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w for %v at %v", ErrNoPrice, sig.GetSymbol(), sig.GetTime())
	}
	targetQuantity := totalValue.Mul(s.MaxPositionFraction).Div(price)

	var amount decimal.Decimal
	switch direction {
	case common.Buy:
		if currentPosition.GreaterThan(decimal.Zero) {
			return nil, nil
		}
		amount = targetQuantity
		if currentPosition.LessThan(decimal.Zero) {
			// cover the short exactly, never flip past flat in one order
			amount = currentPosition.Abs()
		}
	case common.Sell:
		if currentPosition.LessThan(decimal.Zero) {
			return nil, nil
		}
		amount = targetQuantity
		if currentPosition.GreaterThan(decimal.Zero) {
			amount = currentPosition
		}
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &order.Order{
		Base: &event.Base{
			Offset:  sig.GetOffset(),
			Time:    sig.GetTime(),
			Symbol:  sig.GetSymbol(),
			Reasons: sig.GetReasons(),
		},
		ID:        id.String(),
		Direction: direction,
		Amount:    amount,
	}, nil
}
