// Package exchange converts orders into fills with modelled execution
// costs. Orders execute against the same day's closing price that
// produced their signal, a documented simplification of the simulation
package exchange

import (
	"fmt"

	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/event"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/fill"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/kline"
	"github.com/Joseph-Carlucci/quant-platform/eventtypes/order"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// New validates the cost model rates and returns an execution simulator
func New(commissionRate, minimumCommission, slippageRate decimal.Decimal, log *zap.Logger) (*Exchange, error) {
	if commissionRate.IsNegative() || minimumCommission.IsNegative() || slippageRate.IsNegative() {
		return nil, ErrNegativeRate
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Exchange{
		commissionRate:    commissionRate,
		minimumCommission: minimumCommission,
		slippageRate:      slippageRate,
		log:               log,
	}, nil
}

// ExecuteOrder fills the order against the day's bar for its symbol.
// Slippage always moves the fill price against the trader and
// commission is floored at the configured minimum. A day without a
// price for the symbol drops the order and returns a nil fill, a
// recoverable condition
func (e *Exchange) ExecuteOrder(o order.Event, snapshot *kline.Snapshot) (*fill.Fill, error) {
	if o == nil || snapshot == nil {
		return nil, common.ErrNilArguments
	}
	direction := o.GetDirection()
	if direction != common.Buy && direction != common.Sell {
		return nil, fmt.Errorf("%w: %v", common.ErrUnknownDirection, direction)
	}
	closePrice, ok := snapshot.ClosePrice(o.GetSymbol())
	if !ok {
		e.log.Warn("no price data for order, dropping",
			zap.String("symbol", o.GetSymbol()),
			zap.Time("date", snapshot.GetTime()))
		return nil, nil
	}

	fillPrice := e.applySlippage(direction, closePrice)
	commission := e.calculateCommission(o.GetAmount(), fillPrice)

	return &fill.Fill{
		Base: &event.Base{
			Offset:  o.GetOffset(),
			Time:    snapshot.GetTime(),
			Symbol:  o.GetSymbol(),
			Reasons: o.GetReasons(),
		},
		OrderID:       o.GetID(),
		Direction:     direction,
		Amount:        o.GetAmount(),
		ClosePrice:    closePrice,
		PurchasePrice: fillPrice,
		Commission:    commission,
		SlippageRate:  e.slippageRate,
	}, nil
}

// applySlippage moves the price against the trader: buys pay up, sells
// receive less
func (e *Exchange) applySlippage(direction common.Direction, price decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if direction == common.Buy {
		return price.Mul(one.Add(e.slippageRate))
	}
	return price.Mul(one.Sub(e.slippageRate))
}

// calculateCommission charges the configured rate on the traded value,
// floored at the minimum commission
func (e *Exchange) calculateCommission(amount, fillPrice decimal.Decimal) decimal.Decimal {
	charged := amount.Mul(fillPrice).Abs().Mul(e.commissionRate)
	if charged.LessThan(e.minimumCommission) {
		return e.minimumCommission
	}
	return charged
}
