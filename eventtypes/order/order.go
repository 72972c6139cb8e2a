package order

import (
	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/shopspring/decimal"
)

// IsOrder returns whether the event is an order event
func (o *Order) IsOrder() bool {
	return true
}

// SetDirection sets the side of the order
func (o *Order) SetDirection(d common.Direction) {
	o.Direction = d
}

// GetDirection returns the side of the order
func (o *Order) GetDirection() common.Direction {
	return o.Direction
}

// SetAmount sets the amount
func (o *Order) SetAmount(a decimal.Decimal) {
	o.Amount = a
}

// GetAmount returns the amount
func (o *Order) GetAmount() decimal.Decimal {
	return o.Amount
}

// SetID sets the order id
func (o *Order) SetID(id string) {
	o.ID = id
}

// GetID returns the ID
func (o *Order) GetID() string {
	return o.ID
}
