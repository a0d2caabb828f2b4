package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name     string         `toml:"name"`
	Base     thTOMLBase     `toml:"base"`
	Text     thTOMLText     `toml:"text"`
	Progress thTOMLProgress `toml:"progress"`
	Chrome   thTOMLChrome   `toml:"chrome"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLText struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Clock    string `toml:"clock"`
	Caption  string `toml:"caption"`
	Quote    string `toml:"quote"`
	Author   string `toml:"author"`
}

type thTOMLProgress struct {
	Filled string `toml:"filled"`
	Empty  string `toml:"empty"`
	Done   string `toml:"done"`
}

type thTOMLChrome struct {
	Border   string `toml:"border"`
	HelpKey  string `toml:"help_key"`
	HelpDesc string `toml:"help_desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		Title:    tt.Text.Title,
		Subtitle: tt.Text.Subtitle,
		Clock:    tt.Text.Clock,
		Caption:  tt.Text.Caption,
		Quote:    tt.Text.Quote,
		Author:   tt.Text.Author,

		ProgressFilled: tt.Progress.Filled,
		ProgressEmpty:  tt.Progress.Empty,
		ProgressDone:   tt.Progress.Done,

		Border:   tt.Chrome.Border,
		HelpKey:  tt.Chrome.HelpKey,
		HelpDesc: tt.Chrome.HelpDesc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// LoadFile reads a TOML theme from path and registers it, so that it can be
// selected by name afterwards.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, err
	}
	thRegister(t)
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Text: thTOMLText{
			Title:    t.Title,
			Subtitle: t.Subtitle,
			Clock:    t.Clock,
			Caption:  t.Caption,
			Quote:    t.Quote,
			Author:   t.Author,
		},
		Progress: thTOMLProgress{
			Filled: t.ProgressFilled,
			Empty:  t.ProgressEmpty,
			Done:   t.ProgressDone,
		},
		Chrome: thTOMLChrome{
			Border:   t.Border,
			HelpKey:  t.HelpKey,
			HelpDesc: t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidateTheme checks that the theme is named and every color slot holds
// a "#RRGGBB" value.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for _, f := range t.thColorFields() {
		if *f.value == "" {
			return fmt.Errorf("theme: missing required field %q", f.key)
		}
		if !thHexColorRegex.MatchString(*f.value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", *f.value, f.key)
		}
	}
	return nil
}
