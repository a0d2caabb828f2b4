// Package app provides the Bubble Tea application shell for year-pulse. It
// owns the tick schedule, the key map and help bar, and the frame around the
// hosted widget; the widget owns the countdown semantics.
package app

import "time"

// TickEvent is sent every tick interval to recompute the countdown.
type TickEvent struct {
	Time time.Time
}

// QuoteTickEvent is sent every quote interval to rotate the quote.
type QuoteTickEvent struct {
	Time time.Time
}
