// Package theme defines the color palettes for the countdown view. A theme
// only affects presentation; swapping it never changes the computed values.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette for the countdown widget.
// All colors are "#RRGGBB" hex strings unless the theme has been adapted to
// a smaller color profile (see Adapt).
type Theme struct {
	Name string

	// Base colors
	Background string
	Foreground string
	Dim        string
	Accent     string

	// Text roles
	Title    string // the large year heading
	Subtitle string
	Clock    string // the remaining-time readout
	Caption  string
	Quote    string
	Author   string

	// Progress bar
	ProgressFilled string
	ProgressEmpty  string
	ProgressDone   string // filled color once the target is reached

	// Chrome
	Border   string
	HelpKey  string
	HelpDesc string
}

// Current holds the active theme, adapted to the output's color profile.
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
	Current = thDefaultTheme()
}

// Get returns a named theme, falling back to the default theme if the name
// is not registered.
func Get(name string) Theme {
	t, _ := Lookup(name)
	return t
}

// Lookup returns a named theme and whether it exists. When it does not, the
// default theme is returned.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t, true
	}
	return registry["default"], false
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a theme after validating it.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// thColorField names one color slot of a theme.
type thColorField struct {
	key   string
	value *string
}

// thColorFields returns pointers to every color slot, keyed by the TOML
// field name. Validation and profile adaption both walk this list.
func (t *Theme) thColorFields() []thColorField {
	return []thColorField{
		{"background", &t.Background},
		{"foreground", &t.Foreground},
		{"dim", &t.Dim},
		{"accent", &t.Accent},
		{"title", &t.Title},
		{"subtitle", &t.Subtitle},
		{"clock", &t.Clock},
		{"caption", &t.Caption},
		{"quote", &t.Quote},
		{"author", &t.Author},
		{"progress_filled", &t.ProgressFilled},
		{"progress_empty", &t.ProgressEmpty},
		{"progress_done", &t.ProgressDone},
		{"border", &t.Border},
		{"help_key", &t.HelpKey},
		{"help_desc", &t.HelpDesc},
	}
}
