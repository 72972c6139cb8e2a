package data

import (
	"context"
	"errors"
	"time"

	"github.com/Joseph-Carlucci/quant-platform/eventtypes/kline"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoData is the fatal precondition failure raised when a load
	// produces no bars
	ErrNoData = errors.New("no market data loaded")
	// ErrInvalidBar occurs when a bar cannot be parsed
	ErrInvalidBar = errors.New("invalid bar data")
)

// Bar is an immutable OHLCV reading for one symbol on one date. The
// engine never mutates bars after loading
type Bar struct {
	Symbol string          `json:"symbol"`
	Date   time.Time       `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume decimal.Decimal `json:"volume"`
}

// Point is a dated value, used for externally supplied benchmark series
type Point struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// Source is the external collaborator market data arrives through. The
// returned bars are fully materialised before a run begins; retries and
// caching belong behind this interface, not in the engine
type Source interface {
	Load(ctx context.Context, symbols []string, start, end time.Time) ([]Bar, error)
}

// Handler guides the engine through a loaded bar set one trading day at
// a time, in ascending date order
type Handler interface {
	Next() (*kline.Snapshot, bool)
	Latest() *kline.Snapshot
	Offset() int64
	Reset()
}
