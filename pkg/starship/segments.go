package starship

import "gitlab.com/tinyland/lab/year-pulse/pkg/countdown"

const (
	ssColorGreen  = "\033[32m"
	ssColorYellow = "\033[33m"
	ssColorRed    = "\033[31m"
)

// ssRemainingSegment shows the two most significant units left, or "done".
// Example: "⏳ 73d 4h"
func ssRemainingSegment(state countdown.State, icon, color string) *Segment {
	text := state.Remaining.Compact()
	if state.Done {
		text = "done"
	}
	return &Segment{Icon: icon, Text: text, Color: color}
}

// ssProgressSegment shows the elapsed share of the range.
// Example: "80.3%"
func ssProgressSegment(state countdown.State, color string) *Segment {
	return &Segment{Text: state.ProgressString(), Color: color}
}

// ssProgressColor is green below 50% elapsed, yellow below 80%, red after.
func ssProgressColor(state countdown.State) string {
	switch {
	case state.Progress >= 80:
		return ssColorRed
	case state.Progress >= 50:
		return ssColorYellow
	default:
		return ssColorGreen
	}
}
