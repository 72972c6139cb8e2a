package fill

import (
	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/shopspring/decimal"
)

// IsFill returns whether the event is a fill event
func (f *Fill) IsFill() bool {
	return true
}

// GetDirection returns the side of the fill
func (f *Fill) GetDirection() common.Direction {
	return f.Direction
}

// GetAmount returns the filled quantity
func (f *Fill) GetAmount() decimal.Decimal {
	return f.Amount
}

// GetClosePrice returns the close price the fill was derived from
func (f *Fill) GetClosePrice() decimal.Decimal {
	return f.ClosePrice
}

// GetPurchasePrice returns the slippage-adjusted settlement price
func (f *Fill) GetPurchasePrice() decimal.Decimal {
	return f.PurchasePrice
}

// GetCommission returns the commission charged on the fill
func (f *Fill) GetCommission() decimal.Decimal {
	return f.Commission
}

// GetSlippageRate returns the slippage rate applied to the fill
func (f *Fill) GetSlippageRate() decimal.Decimal {
	return f.SlippageRate
}

// CashDelta returns the signed change the fill makes to the cash
// ledger: negative for buys, positive for sells, commission included
func (f *Fill) CashDelta() decimal.Decimal {
	gross := f.Amount.Mul(f.PurchasePrice)
	switch f.Direction {
	case common.Buy:
		return gross.Add(f.Commission).Neg()
	case common.Sell:
		return gross.Sub(f.Commission)
	}
	return decimal.Zero
}
