package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const appName = "year-pulse"

// Load reads configuration from the first config file found.
// Search order:
//  1. $XDG_CONFIG_HOME/year-pulse/config.toml
//  2. ~/.config/year-pulse/config.toml
//
// With no file, the defaults plus environment overrides are returned.
func Load() (*Config, error) {
	if p := FindConfigFile(); p != "" {
		return LoadFromFile(p)
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// FindConfigFile returns the first existing path from the search order, or
// "" when there is none.
func FindConfigFile() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadFromFile reads configuration from path. Unlike Load, a missing file
// is an error since the caller asked for it by name.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes TOML from r over the defaults, then applies
// environment overrides. Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
			LogFile:  filepath.Join(xdgCacheHome(home), appName, appName+".log"),
		},
		Countdown: CountdownConfig{
			ClampProgress: true,
			TickInterval:  Duration{1 * time.Second},
			QuoteInterval: Duration{10 * time.Second},
		},
		Display: DisplayConfig{
			Theme:      "default",
			Subtitle:   "Your Story Awaits",
			ShowQuotes: true,
		},
		Starship: StarshipConfig{
			MaxWidth:     60,
			Icon:         "⏳",
			ShowProgress: true,
		},
	}
}

// applyEnvOverrides lets the environment override the theme, target and
// log level.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("YEAR_PULSE_THEME"); v != "" {
		cfg.Display.Theme = v
	}
	if v := os.Getenv("YEAR_PULSE_TARGET"); v != "" {
		cfg.Countdown.Target = v
	}
	if v := os.Getenv("YEAR_PULSE_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}

	return paths
}

func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}
