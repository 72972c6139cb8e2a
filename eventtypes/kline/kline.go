package kline

import (
	"sort"

	"github.com/shopspring/decimal"
)

// GetClosePrice returns the closing price of a kline
func (k *Kline) GetClosePrice() decimal.Decimal {
	return k.Close
}

// GetHighPrice returns the high price of a kline
func (k *Kline) GetHighPrice() decimal.Decimal {
	return k.High
}

// GetLowPrice returns the low price of a kline
func (k *Kline) GetLowPrice() decimal.Decimal {
	return k.Low
}

// GetOpenPrice returns the open price of a kline
func (k *Kline) GetOpenPrice() decimal.Decimal {
	return k.Open
}

// GetVolume returns the volume of a kline
func (k *Kline) GetVolume() decimal.Decimal {
	return k.Volume
}

// IsKline distinguishes a kline event from the signal events that
// otherwise satisfy the same interfaces
func (k *Kline) IsKline() bool {
	return true
}

// Bar returns the day's kline for the symbol, nil when the symbol has
// no data for the day
func (s *Snapshot) Bar(symbol string) *Kline {
	return s.Bars[symbol]
}

// ClosePrice returns the day's closing price for the symbol along with
// whether a price was available
func (s *Snapshot) ClosePrice(symbol string) (decimal.Decimal, bool) {
	k, ok := s.Bars[symbol]
	if !ok {
		return decimal.Zero, false
	}
	return k.Close, true
}

// ClosePrices returns every symbol's closing price for the day
func (s *Snapshot) ClosePrices() map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(s.Bars))
	for symbol, k := range s.Bars {
		prices[symbol] = k.Close
	}
	return prices
}

// Symbols returns the symbols with data for the day in lexicographic
// order so processing is deterministic
func (s *Snapshot) Symbols() []string {
	symbols := make([]string, 0, len(s.Bars))
	for symbol := range s.Bars {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}
