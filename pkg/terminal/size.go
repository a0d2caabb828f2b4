package terminal

import (
	"os"
	"strconv"
)

// Size is the terminal size in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal dimensions. It tries, in order:
//  1. TIOCGWINSZ on stdout
//  2. TIOCGWINSZ on stderr (stdout may be piped, e.g. in a prompt)
//  3. COLUMNS/LINES
//  4. 80x24
func GetSize() Size {
	return sizeFromFds(os.Stdout.Fd(), os.Stderr.Fd())
}

func sizeFromFds(fds ...uintptr) Size {
	for _, fd := range fds {
		if s := sizeFromIoctl(fd); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	return sizeFromEnv()
}

// Override returns s with each dimension replaced by cols or rows when
// that argument is positive. Used for --term-width/--term-height.
func (s Size) Override(cols, rows int) Size {
	if cols > 0 {
		s.Cols = cols
	}
	if rows > 0 {
		s.Rows = rows
	}
	return s
}

func sizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

// envInt reads a positive integer from the named variable, or returns
// fallback.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
