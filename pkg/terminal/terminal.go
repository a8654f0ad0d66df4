// Package terminal probes the attached output device for its dimensions.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// WidthFunc supplies a target column count for layout. A return of 0 means
// "no width available" and callers apply no fill.
type WidthFunc func() int

// Width returns the column count of the terminal attached to stdout, or 0
// when output is piped or redirected.
func Width() int {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil || w < 0 {
		return 0
	}
	return w
}

// Fixed returns a WidthFunc that always reports the given width. Used by
// tests and by explicit width overrides.
func Fixed(width int) WidthFunc {
	return func() int { return width }
}

// Scaled wraps a WidthFunc, scaling its result by a percentage (0-100).
func Scaled(base WidthFunc, percent int) WidthFunc {
	return func() int {
		return base() * percent / 100
	}
}
