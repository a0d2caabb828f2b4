package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BoxStyle controls the visual appearance of a rendered box.
type BoxStyle struct {
	Title      string
	TitleAlign Align
	Color      string // border color; "" renders uncolored
	PadX       int    // blank columns inside each vertical border
}

// RenderBox renders content inside a rounded border, returning exactly
// height lines of exactly width cells. width and height are the outer
// dimensions. Content is truncated or padded to the interior; missing lines
// are filled with blanks. Returns "" when there is no room for the border.
func RenderBox(content string, width, height int, style BoxStyle) string {
	if width < 2 || height < 2 {
		return ""
	}

	border := lipgloss.RoundedBorder()
	paint := lipgloss.NewStyle()
	if style.Color != "" {
		paint = paint.Foreground(lipgloss.Color(style.Color))
	}

	padX := style.PadX
	if padX < 0 || 2*padX > width-2 {
		padX = 0
	}
	interiorW := width - 2 - 2*padX
	interiorH := height - 2
	pad := strings.Repeat(" ", padX)

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}

	lines := make([]string, 0, height)
	lines = append(lines, paint.Render(border.TopLeft)+
		boxTitleBar(style.Title, style.TitleAlign, width-2, border.Top, paint)+
		paint.Render(border.TopRight))

	left := paint.Render(border.Left)
	right := paint.Render(border.Right)
	for i := 0; i < interiorH; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines, left+pad+PadRight(Truncate(line, interiorW), interiorW)+pad+right)
	}

	lines = append(lines, paint.Render(border.BottomLeft+strings.Repeat(border.Bottom, width-2)+border.BottomRight))
	return strings.Join(lines, "\n")
}

// boxTitleBar renders the top border run with the title embedded in it,
// surrounded by single spaces. Titles that do not fit are elided.
func boxTitleBar(title string, align Align, barWidth int, hChar string, paint lipgloss.Style) string {
	maxTitle := barWidth - 4
	if title == "" || maxTitle <= 0 {
		return paint.Render(strings.Repeat(hChar, barWidth))
	}
	if VisibleLen(title) > maxTitle {
		title = TruncateWithTail(title, maxTitle, "…")
	}

	segment := " " + title + " "
	remaining := barWidth - VisibleLen(segment)

	var leftN int
	switch align {
	case AlignCenter:
		leftN = remaining / 2
	case AlignRight:
		leftN = remaining - 1
	default:
		leftN = 1
	}

	return paint.Render(strings.Repeat(hChar, leftN)) + segment +
		paint.Render(strings.Repeat(hChar, remaining-leftN))
}
