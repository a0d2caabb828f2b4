// Package terminal answers the questions year-pulse asks about its output
// before drawing: is it a terminal, how large is it, and how many colors
// does it take.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTerminal reports whether f is attached to a terminal, including Cygwin
// and MSYS pseudo terminals.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Capabilities summarises the session, detected once per process.
type Capabilities struct {
	Interactive bool            // stdin and stdout are both terminals
	Profile     termenv.Profile // color profile of stdout
	Size        Size
	Mux         bool // inside tmux, screen or zellij
	SSH         bool
}

var (
	cached     *Capabilities
	detectOnce sync.Once
)

// DetectCapabilities runs detection on first use and caches the result.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

func detect() *Capabilities {
	return &Capabilities{
		Interactive: IsTerminal(os.Stdin) && IsTerminal(os.Stdout),
		Profile:     ProfileFor(os.Stdout),
		Size:        GetSize(),
		Mux:         inMultiplexer(),
		SSH:         os.Getenv("SSH_CONNECTION") != "" || os.Getenv("SSH_TTY") != "",
	}
}

// ProfileFor returns the color profile termenv detects for w, honoring
// NO_COLOR and CLICOLOR_FORCE.
func ProfileFor(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}

// ParseProfile maps a --color value to a profile. "auto" and "" return
// detected unchanged.
func ParseProfile(s string, detected termenv.Profile) (termenv.Profile, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return detected, nil
	case "truecolor", "24bit":
		return termenv.TrueColor, nil
	case "256", "ansi256":
		return termenv.ANSI256, nil
	case "16", "ansi":
		return termenv.ANSI, nil
	case "none", "ascii", "off":
		return termenv.Ascii, nil
	}
	return detected, fmt.Errorf("terminal: unknown color mode %q", s)
}

// ProfileName returns a short name for p, for logging.
func ProfileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

func inMultiplexer() bool {
	if os.Getenv("TMUX") != "" || os.Getenv("STY") != "" || os.Getenv("ZELLIJ") != "" {
		return true
	}
	term := os.Getenv("TERM")
	return strings.HasPrefix(term, "screen") || strings.HasPrefix(term, "tmux")
}
