package portfolio

import (
	"time"

	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/portfolio/holdings"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/portfolio/size"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/fill"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/order"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/signal"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// New validates the ledger inputs and returns a funded portfolio
func New(initialCapital, commissionRate decimal.Decimal, sizeManager *size.Size, log *zap.Logger) (*Portfolio, error) {
	if initialCapital.LessThanOrEqual(decimal.Zero) {
		return nil, ErrNoCapital
	}
	if commissionRate.IsNegative() {
		return nil, ErrNegativeCommission
	}
	if sizeManager == nil {
		return nil, ErrNilSizeManager
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Portfolio{
		initialCapital: initialCapital,
		commissionRate: commissionRate,
		sizeManager:    sizeManager,
		log:            log,
		cash:           initialCapital,
		positions:      make(map[string]decimal.Decimal),
		lastPrices:     make(map[string]decimal.Decimal),
	}, nil
}

// OnSignal routes a strategy signal through the size manager, yielding
// at most one order. Sizing works off the latest recorded total value,
// so a day's signals are all sized against the same valuation
func (p *Portfolio) OnSignal(s signal.Event) (*order.Order, error) {
	if s == nil {
		return nil, common.ErrNilEvent
	}
	return p.sizeManager.SizeSignal(s, p.TotalValue(), p.GetPosition(s.GetSymbol()))
}

// ExecuteFill settles a fill against the ledger. Buys reduce cash by
// quantity*price plus commission and grow the position; sells do the
// reverse. Affordability is the caller's responsibility via CanAfford;
// there is no guard here against cash going negative
func (p *Portfolio) ExecuteFill(f fill.Event) {
	if f == nil {
		return
	}
	symbol := f.GetSymbol()
	switch f.GetDirection() {
	case common.Buy:
		p.cash = p.cash.Add(f.CashDelta())
		p.positions[symbol] = p.positions[symbol].Add(f.GetAmount())
	case common.Sell:
		p.cash = p.cash.Add(f.CashDelta())
		p.positions[symbol] = p.positions[symbol].Sub(f.GetAmount())
	default:
		return
	}
	if p.positions[symbol].IsZero() {
		// do not retain flat entries; final positions only list open ones
		delete(p.positions, symbol)
	}
	p.log.Debug("fill executed",
		zap.String("symbol", symbol),
		zap.String("direction", string(f.GetDirection())),
		zap.String("amount", f.GetAmount().String()),
		zap.String("price", f.GetPurchasePrice().String()),
		zap.String("commission", f.GetCommission().String()))
}

// CanAfford reports whether the ledger can take the order at the given
// price: buys need cash covering quantity*price plus the commission
// rate, sells need at least the order quantity held long. No side
// effects; a false return is a recoverable condition for the caller
func (p *Portfolio) CanAfford(o order.Event, currentPrice decimal.Decimal) bool {
	if o == nil {
		return false
	}
	switch o.GetDirection() {
	case common.Buy:
		cost := o.GetAmount().Mul(currentPrice).Mul(decimal.NewFromInt(1).Add(p.commissionRate))
		return p.cash.GreaterThanOrEqual(cost)
	case common.Sell:
		return p.GetPosition(o.GetSymbol()).GreaterThanOrEqual(o.GetAmount())
	}
	return false
}

// GetPosition returns the signed quantity held in the symbol, zero when
// flat
func (p *Portfolio) GetPosition(symbol string) decimal.Decimal {
	return p.positions[symbol]
}

// Positions returns a copy of all open positions
func (p *Portfolio) Positions() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(p.positions))
	for symbol, quantity := range p.positions {
		out[symbol] = quantity
	}
	return out
}

// UpdateMarketValue revalues the ledger at the day's closing prices and
// appends the equity snapshot. Must be called exactly once per trading
// day, after all of the day's fills have been applied
func (p *Portfolio) UpdateMarketValue(prices map[string]decimal.Decimal, timestamp time.Time) holdings.Snapshot {
	for symbol, price := range prices {
		p.lastPrices[symbol] = price
	}
	snapshot := holdings.Create(timestamp, p.cash, p.positions, p.lastPrices)
	p.history = append(p.history, snapshot)
	return snapshot
}

// TotalValue returns the latest recorded total value, or the initial
// capital before the first snapshot exists
func (p *Portfolio) TotalValue() decimal.Decimal {
	if len(p.history) == 0 {
		return p.initialCapital
	}
	return p.history[len(p.history)-1].TotalValue
}

// Cash returns the current cash balance
func (p *Portfolio) Cash() decimal.Decimal {
	return p.cash
}

// InitialCapital returns the capital the run started with
func (p *Portfolio) InitialCapital() decimal.Decimal {
	return p.initialCapital
}

// EquityHistory returns the per-day snapshots recorded so far
func (p *Portfolio) EquityHistory() []holdings.Snapshot {
	out := make([]holdings.Snapshot, len(p.history))
	copy(out, p.history)
	return out
}

// Reset returns the ledger to its initial funded state
func (p *Portfolio) Reset() {
	p.cash = p.initialCapital
	p.positions = make(map[string]decimal.Decimal)
	p.lastPrices = make(map[string]decimal.Decimal)
	p.history = nil
}
