package theme

import (
	"strconv"

	"github.com/muesli/termenv"
)

// Adapt converts every color in t to the given terminal color profile.
// TrueColor leaves the theme untouched. ANSI256 and ANSI profiles turn each
// hex color into the nearest palette index ("196", "4"), which lipgloss
// accepts directly. Ascii blanks all colors.
func Adapt(t Theme, profile termenv.Profile) Theme {
	if profile == termenv.TrueColor {
		return t
	}
	for _, f := range t.thColorFields() {
		*f.value = thConvert(*f.value, profile)
	}
	return t
}

// thConvert maps a single hex color into profile. Unparseable input is
// returned unchanged so a partially adapted theme still renders.
func thConvert(hex string, profile termenv.Profile) string {
	if hex == "" {
		return ""
	}
	switch c := profile.Color(hex).(type) {
	case termenv.ANSI256Color:
		return strconv.Itoa(int(c))
	case termenv.ANSIColor:
		return strconv.Itoa(int(c))
	case termenv.RGBColor:
		return string(c)
	case termenv.NoColor:
		return ""
	default:
		return hex
	}
}
