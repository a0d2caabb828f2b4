// Package starship renders the countdown as a one-line segment for a
// starship custom module:
//
//	[custom.year_pulse]
//	command = "year-pulse --starship"
//	when = true
package starship

import "gitlab.com/tinyland/lab/year-pulse/pkg/countdown"

// Config controls the segment output.
type Config struct {
	Icon         string // leading icon for the remaining-time segment
	MaxWidth     int    // max visible width (default 60)
	ShowProgress bool
	Color        bool // emit ANSI colors; off when stdout is not a terminal
}

// Segment is a single piece of the status line.
type Segment struct {
	Icon  string
	Text  string
	Color string // ANSI SGR sequence, "" for none
}

const ssDefaultMaxWidth = 60

// Render produces the segment line for state, e.g. "⏳ 73d 4h │ 80.3%".
// Segments that would push the line past MaxWidth are dropped from the
// right.
func Render(cfg Config, state countdown.State) string {
	maxWidth := cfg.MaxWidth
	if maxWidth <= 0 {
		maxWidth = ssDefaultMaxWidth
	}

	color := ""
	if cfg.Color {
		color = ssProgressColor(state)
	}

	segments := []*Segment{ssRemainingSegment(state, cfg.Icon, color)}
	if cfg.ShowProgress {
		segments = append(segments, ssProgressSegment(state, color))
	}
	return ssFormatLine(segments, maxWidth, cfg.Color)
}
