package event

import (
	"fmt"
	"strings"
	"time"
)

// GetTime returns the time of the event
func (b *Base) GetTime() time.Time {
	return b.Time
}

// GetSymbol returns the symbol the event concerns
func (b *Base) GetSymbol() string {
	return b.Symbol
}

// GetOffset returns the offset of the event within the run
func (b *Base) GetOffset() int64 {
	return b.Offset
}

// SetOffset sets the offset of the event within the run
func (b *Base) SetOffset(o int64) {
	b.Offset = o
}

// AppendReason appends a new reason to the event's history of whys
func (b *Base) AppendReason(y string) {
	b.Reasons = append(b.Reasons, y)
}

// AppendReasonf appends a formatted reason to the event's history of whys
func (b *Base) AppendReasonf(y string, addons ...any) {
	b.Reasons = append(b.Reasons, fmt.Sprintf(y, addons...))
}

// GetReasons returns each individual reason
func (b *Base) GetReasons() []string {
	return b.Reasons
}

// GetConcatReasons joins the reasons into a single string for output
func (b *Base) GetConcatReasons() string {
	return strings.Join(b.Reasons, ". ")
}
