package common

// IsActionable returns whether the direction results in an order
func (d Direction) IsActionable() bool {
	return d == Buy || d == Sell
}
