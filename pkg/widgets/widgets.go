// Package widgets provides the widgets hosted by the year-pulse TUI. Each
// widget implements app.Widget and only changes state inside Update or
// HandleKey.
package widgets

import "github.com/charmbracelet/lipgloss"

// fg returns a style with foreground color c, or a plain style when c is
// empty (an Ascii-adapted theme).
func fg(c string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c != "" {
		s = s.Foreground(lipgloss.Color(c))
	}
	return s
}
