// Package components provides the small rendering primitives the countdown
// view is assembled from: a sub-cell progress gauge, a titled rounded box,
// and ANSI-aware text helpers.
package components

// Align controls horizontal text alignment within a box or line.
type Align int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// AlignLine pads s to width according to a.
func AlignLine(s string, width int, a Align) string {
	switch a {
	case AlignCenter:
		return PadCenter(s, width)
	case AlignRight:
		return PadLeft(s, width)
	default:
		return PadRight(s, width)
	}
}
