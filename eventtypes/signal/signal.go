package signal

import (
	"github.com/Joseph-Carlucci/quant-platform/common"
	"github.com/shopspring/decimal"
)

// IsSignal returns whether the event is a signal type
func (s *Signal) IsSignal() bool {
	return true
}

// SetDirection sets the direction
func (s *Signal) SetDirection(d common.Direction) {
	s.Direction = d
}

// GetDirection returns the direction
func (s *Signal) GetDirection() common.Direction {
	return s.Direction
}

// GetStrength returns the signal's conviction grading
func (s *Signal) GetStrength() decimal.Decimal {
	return s.Strength
}

// SetPrice sets the price the signal was raised at
func (s *Signal) SetPrice(p decimal.Decimal) {
	s.Price = p
}

// GetPrice returns the price the signal was raised at
func (s *Signal) GetPrice() decimal.Decimal {
	return s.Price
}

// IsNil says if the event is nil
func (s *Signal) IsNil() bool {
	return s == nil
}
