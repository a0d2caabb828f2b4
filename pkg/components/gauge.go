package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block characters for sub-cell precision (8 levels per cell).
var gaugeBlocks = [9]rune{
	' ',      // 0/8 empty
	'\u258F', // 1/8
	'\u258E', // 2/8
	'\u258D', // 3/8
	'\u258C', // 4/8
	'\u258B', // 5/8
	'\u258A', // 6/8
	'\u2589', // 7/8
	'\u2588', // 8/8
}

// GaugeStyle configures the appearance of a horizontal progress gauge.
type GaugeStyle struct {
	FilledColor string // color of the filled portion; "" renders uncolored
	EmptyColor  string // background of the unfilled portion
	EmptyRune   rune   // rune drawn in unfilled cells (default light shade)
}

// Gauge renders a horizontal bar with sub-cell precision.
type Gauge struct {
	style GaugeStyle
}

// NewGauge creates a Gauge with the given style.
func NewGauge(style GaugeStyle) *Gauge {
	if style.EmptyRune == 0 {
		style.EmptyRune = '\u2591'
	}
	return &Gauge{style: style}
}

// Render draws percent (0-100) into exactly width cells. Values outside the
// range are drawn as an empty or full bar.
func (g *Gauge) Render(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	full, partial, empty := gaugeCells(percent, width)

	var filled strings.Builder
	filled.WriteString(strings.Repeat(string(gaugeBlocks[8]), full))
	if partial > 0 {
		filled.WriteRune(gaugeBlocks[partial])
	}

	fillStyle := lipgloss.NewStyle()
	if g.style.FilledColor != "" {
		fillStyle = fillStyle.Foreground(lipgloss.Color(g.style.FilledColor))
	}
	emptyStyle := lipgloss.NewStyle()
	if g.style.EmptyColor != "" {
		emptyStyle = emptyStyle.Foreground(lipgloss.Color(g.style.EmptyColor))
		fillStyle = fillStyle.Background(lipgloss.Color(g.style.EmptyColor))
	}

	var b strings.Builder
	if filled.Len() > 0 {
		b.WriteString(fillStyle.Render(filled.String()))
	}
	if empty > 0 {
		b.WriteString(emptyStyle.Render(strings.Repeat(string(g.style.EmptyRune), empty)))
	}
	return b.String()
}

// gaugeCells splits width into full cells, the eighths of the boundary
// cell, and the remaining empty cells.
func gaugeCells(percent float64, width int) (full, partial, empty int) {
	ratio := percent / 100
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	units := int(math.Round(ratio * float64(width*8)))
	full = units / 8
	partial = units % 8
	empty = width - full
	if partial > 0 {
		empty--
	}
	return full, partial, empty
}
