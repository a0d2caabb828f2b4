// Package banner renders a single static frame of a widget, sized to the
// terminal, for printing on shell startup.
package banner

import (
	"gitlab.com/tinyland/lab/year-pulse/pkg/app"
	"gitlab.com/tinyland/lab/year-pulse/pkg/components"
	"gitlab.com/tinyland/lab/year-pulse/pkg/theme"
)

// Preset is a named banner size, in outer cells including the border.
type Preset struct {
	Name   string
	Width  int
	Height int
}

var (
	// Compact fits the compact countdown layout plus a short quote.
	Compact = Preset{"compact", 48, 14}
	// Standard fits the full layout with a one-line quote.
	Standard = Preset{"standard", 64, 18}
	// Wide leaves room for long quotes.
	Wide = Preset{"wide", 80, 22}
)

// Presets lists the presets from largest to smallest.
func Presets() []Preset {
	return []Preset{Wide, Standard, Compact}
}

// SelectPreset returns the largest preset that fits in the terminal. When
// none fits, Compact is shrunk to the terminal size.
func SelectPreset(termWidth, termHeight int) Preset {
	for _, p := range Presets() {
		if termWidth >= p.Width && termHeight >= p.Height {
			return p
		}
	}
	p := Compact
	p.Width = min(p.Width, termWidth)
	p.Height = min(p.Height, termHeight)
	return p
}

// PresetByName looks up a preset by name.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Render draws w inside a rounded border titled with w.Title(), returning
// exactly preset.Height lines of preset.Width cells. The border uses the
// current theme.
func Render(w app.Widget, preset Preset) string {
	if preset.Width < 4 || preset.Height < 2 {
		return ""
	}
	body := w.View(preset.Width-4, preset.Height-2)
	return components.RenderBox(body, preset.Width, preset.Height, components.BoxStyle{
		Title:      w.Title(),
		TitleAlign: components.AlignCenter,
		Color:      theme.Current.Border,
		PadX:       1,
	})
}
