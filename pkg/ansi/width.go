package ansi

import (
	"unicode"

	xansi "github.com/charmbracelet/x/ansi"
)

// Strip removes all escape sequences from s, leaving only printable content.
func Strip(s string) string {
	return xansi.Strip(s)
}

// StringWidth returns the number of terminal columns s occupies, after
// removing escape sequences and accounting for wide and zero-width grapheme
// clusters.
func StringWidth(s string) int {
	return xansi.StringWidth(s)
}

// IsVisuallyEmpty reports whether s renders nothing at all: it is empty or
// contains only escape sequences and non-printable code points. Whitespace
// counts as visible.
func IsVisuallyEmpty(s string) bool {
	for _, r := range Strip(s) {
		if unicode.IsSpace(r) || unicode.IsGraphic(r) {
			return false
		}
	}
	return true
}
