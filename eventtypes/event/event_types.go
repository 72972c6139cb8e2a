package event

import (
	"time"
)

// Base is the underlying event across all event types held in the
// engine's queue. Offset is the position of the event's trading day
// within the run
type Base struct {
	Offset  int64     `json:"offset"`
	Time    time.Time `json:"timestamp"`
	Symbol  string    `json:"symbol"`
	Reasons []string  `json:"reasons"`
}
