package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd returns a Cmd that sends a TickEvent on the next multiple of d
// on the system clock, so one-second ticks land on whole seconds.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Every(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// QuoteTickCmd returns a Cmd that sends a QuoteTickEvent after d. A
// non-positive d yields nil, which disables rotation.
func QuoteTickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return QuoteTickEvent{Time: t}
	})
}
