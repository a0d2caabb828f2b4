package shell

import (
	"fmt"
	"strings"
)

// IntegrationConfig controls the generated snippet.
type IntegrationConfig struct {
	// Binary is the command to run; usually the absolute executable path.
	Binary string

	// Preset is passed as --preset when non-empty.
	Preset string
}

// Integration returns a snippet for the shell's rc file that prints the
// banner once per interactive shell. It does nothing in non-interactive
// shells or when the binary is not installed.
func Integration(sh ShellType, cfg IntegrationConfig) string {
	bin := cfg.Binary
	if bin == "" {
		bin = "year-pulse"
	}
	cmd := shQuote(bin) + " --banner"
	if cfg.Preset != "" {
		cmd += " --preset " + shQuote(cfg.Preset)
	}

	switch sh {
	case Fish:
		return fmt.Sprintf(`# year-pulse: add to ~/.config/fish/config.fish
if status is-interactive; and command -q %s
    %s
end
`, shQuote(bin), cmd)
	case Zsh:
		return fmt.Sprintf(`# year-pulse: add to ~/.zshrc
if [[ -o interactive ]] && command -v %s >/dev/null 2>&1; then
  %s
fi
`, shQuote(bin), cmd)
	default:
		rc := "~/.bashrc"
		if sh == Ksh {
			rc = "~/.kshrc"
		}
		return fmt.Sprintf(`# year-pulse: add to %s
case $- in
  *i*)
    if command -v %s >/dev/null 2>&1; then
      %s
    fi
    ;;
esac
`, rc, shQuote(bin), cmd)
	}
}

// shQuote single-quotes s for POSIX shells and fish when it contains
// anything outside a conservative safe set.
func shQuote(s string) string {
	safe := true
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./:=+", r)) {
			safe = false
			break
		}
	}
	if safe && s != "" {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
