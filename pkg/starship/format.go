package starship

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	ssAnsiReset = "\033[0m"

	ssSeparatorPlain = "│"
	ssSeparatorDim   = "\033[2m│\033[0m"
)

// ssColorize wraps text in color and a reset. Empty color returns text.
func ssColorize(text, color string) string {
	if color == "" {
		return text
	}
	return color + text + ssAnsiReset
}

// ssFormatLine joins segments with a separator and drops rightmost
// segments once the visible width would exceed maxWidth. The first segment
// is kept even when it alone is too wide, truncated to maxWidth.
func ssFormatLine(segments []*Segment, maxWidth int, color bool) string {
	if len(segments) == 0 {
		return ""
	}

	sep := ssSeparatorPlain
	if color {
		sep = ssSeparatorDim
	}
	const sepWidth = 3 // " │ "

	var b strings.Builder
	total := 0
	for i, seg := range segments {
		text := seg.Text
		if seg.Icon != "" {
			text = seg.Icon + " " + text
		}
		rendered := ssColorize(text, seg.Color)
		w := ansi.StringWidth(rendered)

		if i == 0 {
			if w > maxWidth {
				return ansi.Truncate(rendered, maxWidth, "")
			}
			b.WriteString(rendered)
			total = w
			continue
		}
		if total+sepWidth+w > maxWidth {
			break
		}
		b.WriteString(" " + sep + " ")
		b.WriteString(rendered)
		total += sepWidth + w
	}
	return b.String()
}
