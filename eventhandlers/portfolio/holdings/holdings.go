// Package holdings values the ledger at a point in time. A snapshot is
// appended to the portfolio's equity history exactly once per trading
// day, after that day's fills have settled
package holdings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot captures the portfolio's valuation for one trading day.
// TotalValue always equals Cash plus PositionValue
type Snapshot struct {
	Timestamp     time.Time       `json:"timestamp"`
	Cash          decimal.Decimal `json:"cash"`
	PositionValue decimal.Decimal `json:"position-value"`
	TotalValue    decimal.Decimal `json:"total-value"`
}

// Create values every open position at its last known price and returns
// the resulting snapshot. Symbols without a known price contribute
// nothing, which only occurs before their first bar is seen
func Create(timestamp time.Time, cash decimal.Decimal, positions, lastPrices map[string]decimal.Decimal) Snapshot {
	positionValue := decimal.Zero
	for symbol, quantity := range positions {
		price, ok := lastPrices[symbol]
		if !ok || quantity.IsZero() {
			continue
		}
		positionValue = positionValue.Add(quantity.Mul(price))
	}
	return Snapshot{
		Timestamp:     timestamp,
		Cash:          cash,
		PositionValue: positionValue,
		TotalValue:    cash.Add(positionValue),
	}
}
