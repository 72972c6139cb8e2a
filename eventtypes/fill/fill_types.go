package fill

import (
	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/event"
	"github.com/shopspring/decimal"
)

// Fill is an event detailing the realised execution of an order.
// PurchasePrice is the slippage-adjusted price the trade settled at,
// ClosePrice the unadjusted close it was derived from. SlippageRate is
// the rate that was applied, not a cash amount
type Fill struct {
	*event.Base
	OrderID       string           `json:"order-id"`
	Direction     common.Direction `json:"direction"`
	Amount        decimal.Decimal  `json:"amount"`
	ClosePrice    decimal.Decimal  `json:"close-price"`
	PurchasePrice decimal.Decimal  `json:"purchase-price"`
	Commission    decimal.Decimal  `json:"commission"`
	SlippageRate  decimal.Decimal  `json:"slippage-rate"`
}

// Event holds all functions required to handle a fill event
type Event interface {
	common.Event
	GetDirection() common.Direction
	GetAmount() decimal.Decimal
	GetClosePrice() decimal.Decimal
	GetPurchasePrice() decimal.Decimal
	GetCommission() decimal.Decimal
	GetSlippageRate() decimal.Decimal
	CashDelta() decimal.Decimal
	IsFill() bool
}
