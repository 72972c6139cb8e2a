package kline

import (
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/event"
	"github.com/shopspring/decimal"
)

// Kline holds the OHLCV reading of one symbol for one trading day as a
// queueable event
type Kline struct {
	*event.Base
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume decimal.Decimal `json:"volume"`
}

// Snapshot is the market event for one trading day, holding that day's
// bar for every tracked symbol. It is handed directly to order handling
// so downstream components never inspect the queue for market state
type Snapshot struct {
	*event.Base
	Bars map[string]*Kline `json:"bars"`
}
