package utils

import (
	"os"

	"golang.org/x/term"
)

// Fallback size when the terminal cannot be queried
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// TerminalSize returns the size of the terminal attached to f, or 80x24
func TerminalSize(f *os.File) (width, height int) {
	if f == nil {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// ColorEnabled checks if color output should be used.
// Priority: 1. --no-color flag / NO_COLOR -> 2. TERM=dumb -> 3. TTY detection
func ColorEnabled(noColor bool, out *os.File) bool {
	if noColor {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTerminal(out)
}
