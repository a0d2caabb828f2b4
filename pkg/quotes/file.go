package quotes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// quoteFile is the on-disk shape shared by the YAML and TOML formats:
//
//	quotes:
//	  - text: "..."
//	    author: "..."
//
// or, in TOML, a [[quotes]] array of tables.
type quoteFile struct {
	Quotes []Quote `toml:"quotes" yaml:"quotes"`
}

// LoadFile reads a quote list from path. The format is chosen by extension:
// .yaml/.yml or .toml.
func LoadFile(path string) ([]Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("quotes: read %s: %w", path, err)
	}

	var qf quoteFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &qf)
	case ".toml":
		err = toml.Unmarshal(data, &qf)
	default:
		return nil, fmt.Errorf("quotes: unsupported file type %q (want .yaml, .yml or .toml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("quotes: parse %s: %w", path, err)
	}

	if err := Validate(qf.Quotes); err != nil {
		return nil, fmt.Errorf("quotes: %s: %w", path, err)
	}
	return qf.Quotes, nil
}

// Validate checks that list is non-empty and every quote has text.
func Validate(list []Quote) error {
	if len(list) == 0 {
		return ErrNoQuotes
	}
	for i, q := range list {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("quote %d has no text", i)
		}
	}
	return nil
}
