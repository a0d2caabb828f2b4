// Package shell generates the startup snippet that prints the year-pulse
// banner when an interactive shell opens.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ShellType names a supported shell.
type ShellType string

const (
	Bash ShellType = "bash"
	Zsh  ShellType = "zsh"
	Fish ShellType = "fish"
	Ksh  ShellType = "ksh"
)

// shellNames maps binary names to the snippet dialect they accept.
var shellNames = map[string]ShellType{
	"bash":  Bash,
	"sh":    Bash,
	"zsh":   Zsh,
	"fish":  Fish,
	"ksh":   Ksh,
	"ksh93": Ksh,
	"mksh":  Ksh,
	"pdksh": Ksh,
}

// Parse maps a --shell value to a ShellType. "auto" runs Detect. Paths
// and login-shell names ("-zsh") are accepted.
func Parse(s string) (ShellType, error) {
	if strings.EqualFold(s, "auto") {
		return Detect(), nil
	}
	if sh, ok := lookup(s); ok {
		return sh, nil
	}
	return "", fmt.Errorf("shell: unsupported shell %q (supported: bash, zsh, fish, ksh)", s)
}

// Detect guesses the user's shell from $SHELL, then from the parent
// process name on Linux, and falls back to Bash.
func Detect() ShellType {
	return detect(os.Getenv, parentComm)
}

func detect(getenv func(string) string, parent func() string) ShellType {
	if sh, ok := lookup(getenv("SHELL")); ok {
		return sh
	}
	if sh, ok := lookup(parent()); ok {
		return sh
	}
	return Bash
}

func lookup(name string) (ShellType, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	name = strings.ToLower(strings.TrimPrefix(filepath.Base(name), "-"))
	sh, ok := shellNames[name]
	return sh, ok
}

// parentComm reads the parent's command name from procfs. It returns ""
// where procfs is unavailable.
func parentComm() string {
	data, err := os.ReadFile("/proc/" + strconv.Itoa(os.Getppid()) + "/comm")
	if err != nil {
		return ""
	}
	return string(data)
}
