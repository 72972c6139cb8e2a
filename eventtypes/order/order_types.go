package order

import (
	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/event"
	"github.com/shopspring/decimal"
)

// Order contains all details for an order event. Amount is always
// positive; Direction carries the side
type Order struct {
	*event.Base
	ID        string          `json:"id"`
	Direction common.Direction `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
}

// Event inherits common event interfaces along with extra functions
// related to handling orders
type Event interface {
	common.Event
	GetDirection() common.Direction
	SetAmount(decimal.Decimal)
	GetAmount() decimal.Decimal
	IsOrder() bool
	GetID() string
}
