package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/year-pulse/pkg/countdown"
	"gitlab.com/tinyland/lab/year-pulse/pkg/quotes"
	"gitlab.com/tinyland/lab/year-pulse/pkg/theme"
)

// Sentinel errors returned by Validate and the resolve helpers.
var (
	ErrInvalidTime     = errors.New("config: invalid time")
	ErrInvalidRange    = errors.New("config: range_start must be before target")
	ErrUnknownTheme    = errors.New("config: unknown theme")
	ErrInvalidLogLevel = errors.New("config: invalid log level")
	ErrInvalidInterval = errors.New("config: invalid interval")
)

// Config is the top-level configuration.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Countdown CountdownConfig `toml:"countdown"`
	Display   DisplayConfig   `toml:"display"`
	Quotes    QuotesConfig    `toml:"quotes"`
	Starship  StarshipConfig  `toml:"starship"`
}

// GeneralConfig holds logging settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"` // debug, info, warn, error
	LogFile  string `toml:"log_file"`
}

// CountdownConfig describes the target instant and the tick schedule.
type CountdownConfig struct {
	// Target is the instant counted down to. Accepts RFC 3339 or a local
	// "2006-01-02T15:04:05", "2006-01-02 15:04:05" or "2006-01-02". Empty
	// means the end of the current year at process start.
	Target string `toml:"target"`

	// RangeStart is where progress starts from. Empty means January 1st of
	// the target's year.
	RangeStart string `toml:"range_start"`

	// Location is an IANA zone name used for times without an offset.
	// Empty or "Local" uses the system zone.
	Location string `toml:"location"`

	ClampProgress bool     `toml:"clamp_progress"`
	TickInterval  Duration `toml:"tick_interval"`
	QuoteInterval Duration `toml:"quote_interval"` // 0 disables rotation
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Theme      string `toml:"theme"`
	ThemeFile  string `toml:"theme_file"`
	Title      string `toml:"title"`    // default: the target year
	Subtitle   string `toml:"subtitle"` // default: "Your Story Awaits"
	Caption    string `toml:"caption"`  // default: "Time remaining in <year>"
	ShowQuotes bool   `toml:"show_quotes"`
}

// QuotesConfig selects the quote list. File wins over Items; with neither,
// the built-in list is used.
type QuotesConfig struct {
	File       string         `toml:"file"`
	StartIndex int            `toml:"start_index"`
	Items      []quotes.Quote `toml:"items"`
}

// StarshipConfig controls the one-line prompt segment.
type StarshipConfig struct {
	MaxWidth     int    `toml:"max_width"`
	Icon         string `toml:"icon"`
	ShowProgress bool   `toml:"show_progress"`
}

// Validate checks the configuration for values that cannot be resolved.
// Themes from theme_file are only known once theme.LoadFile has
// registered them, so load the file first.
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.General.LogLevel); err != nil {
		return err
	}
	if c.Countdown.TickInterval.Duration <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalidInterval)
	}
	if _, err := c.Countdown.Resolve(time.Now()); err != nil {
		return err
	}
	if _, ok := theme.Lookup(c.Display.Theme); !ok {
		return fmt.Errorf("%w %q (available: %s)", ErrUnknownTheme, c.Display.Theme, strings.Join(theme.Names(), ", "))
	}
	if len(c.Quotes.Items) > 0 {
		if err := quotes.Validate(c.Quotes.Items); err != nil {
			return fmt.Errorf("config: quotes.items: %w", err)
		}
	}
	return nil
}

// ParseLogLevel maps a log level name to a slog.Level. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w %q", ErrInvalidLogLevel, s)
}

// Resolve turns the configured strings into a Countdown. now is only
// consulted when no target is configured.
func (cc CountdownConfig) Resolve(now time.Time) (countdown.Countdown, error) {
	loc, err := cc.location()
	if err != nil {
		return countdown.Countdown{}, err
	}

	target := countdown.EndOfYear(now.In(loc))
	if cc.Target != "" {
		if target, err = parseTime(cc.Target, loc); err != nil {
			return countdown.Countdown{}, fmt.Errorf("config: target: %w", err)
		}
	}

	rangeStart := countdown.StartOfYear(target)
	if cc.RangeStart != "" {
		if rangeStart, err = parseTime(cc.RangeStart, loc); err != nil {
			return countdown.Countdown{}, fmt.Errorf("config: range_start: %w", err)
		}
	}
	if !rangeStart.Before(target) {
		return countdown.Countdown{}, ErrInvalidRange
	}

	return countdown.Countdown{
		Target:     target,
		RangeStart: rangeStart,
		Clamp:      cc.ClampProgress,
	}, nil
}

func (cc CountdownConfig) location() (*time.Location, error) {
	if cc.Location == "" || strings.EqualFold(cc.Location, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(cc.Location)
	if err != nil {
		return nil, fmt.Errorf("config: location %q: %w", cc.Location, err)
	}
	return loc, nil
}

// timeLayouts are tried in order for values without an explicit offset.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q", ErrInvalidTime, s)
}

// Labels fills in the title, subtitle and caption defaults for target.
func (d DisplayConfig) Labels(target time.Time) (title, subtitle, caption string) {
	year := fmt.Sprintf("%d", target.Year())
	title, subtitle, caption = d.Title, d.Subtitle, d.Caption
	if title == "" {
		title = year
	}
	if subtitle == "" {
		subtitle = "Your Story Awaits"
	}
	if caption == "" {
		caption = "Time remaining in " + year
	}
	return title, subtitle, caption
}

// QuoteList returns the configured quotes: the file if set, the inline
// items if any, otherwise the built-in list.
func (q QuotesConfig) QuoteList() ([]quotes.Quote, error) {
	switch {
	case q.File != "":
		return quotes.LoadFile(q.File)
	case len(q.Items) > 0:
		if err := quotes.Validate(q.Items); err != nil {
			return nil, fmt.Errorf("config: quotes.items: %w", err)
		}
		return q.Items, nil
	default:
		return quotes.Builtin(), nil
	}
}
