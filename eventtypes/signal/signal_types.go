package signal

import (
	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/event"
	"github.com/shopspring/decimal"
)

// Signal is the event raised by a strategy when it believes action
// should be considered for a symbol. Strength grades the conviction of
// the signal within [0, 1]. Price may be zero when the strategy has no
// view on price; sizing then falls back to a configured default
type Signal struct {
	*event.Base
	Direction common.Direction  `json:"direction"`
	Strength  decimal.Decimal   `json:"strength"`
	Price     decimal.Decimal   `json:"price"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Event is the interface the sizing layer consumes signals through
type Event interface {
	common.Event
	GetDirection() common.Direction
	GetStrength() decimal.Decimal
	GetPrice() decimal.Decimal
	IsSignal() bool
}
