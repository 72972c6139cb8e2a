package common

import (
	"errors"
	"time"
)

// Direction is the side a signal, order or fill acts on
type Direction string

const (
	// Buy indicates a long-opening or short-covering action
	Buy Direction = "BUY"
	// Sell indicates a short-opening or long-closing action
	Sell Direction = "SELL"
	// Hold indicates no action should be taken
	Hold Direction = "HOLD"
	// DoNothing is set on signals that resolved to no action
	DoNothing Direction = "DO NOTHING"
	// CouldNotBuy is set on a buy order the portfolio could not afford
	CouldNotBuy Direction = "COULD NOT BUY"
	// CouldNotSell is set on a sell order without the position to cover
	// it
	CouldNotSell Direction = "COULD NOT SELL"
)

var (
	// ErrNilEvent ensures a nil event is not processed
	ErrNilEvent = errors.New("nil event received")
	// ErrNilArguments is shared between packages for nil argument checks
	ErrNilArguments = errors.New("received nil argument(s)")
	// ErrInvalidDataType occurs when an event does not match the expected type
	ErrInvalidDataType = errors.New("invalid data type received")
	// ErrUnknownDirection occurs on a direction outside the recognised set
	ErrUnknownDirection = errors.New("unknown direction")
)

// Event is the lowest common denominator of anything that passes
// through the engine's queue
type Event interface {
	GetTime() time.Time
	GetSymbol() string
	GetOffset() int64
	GetReasons() []string
	AppendReason(string)
}
