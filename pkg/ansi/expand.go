package ansi

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// positions splits s into user-visible glyph positions. Escape sequences are
// attached to the glyph that follows them; trailing escapes are attached to
// the last position so styling travels with its content when positions are
// repeated.
func positions(s string) []string {
	var out []string
	var pending strings.Builder

	for _, tok := range Tokenize(s) {
		if tok.Kind == EscapeToken {
			pending.WriteString(tok.Value)
			continue
		}
		g := uniseg.NewGraphemes(tok.Value)
		for g.Next() {
			out = append(out, pending.String()+g.Str())
			pending.Reset()
		}
	}
	if pending.Len() > 0 {
		if len(out) == 0 {
			return nil
		}
		out[len(out)-1] += pending.String()
	}
	return out
}

// ExpandToVisualWidth repeats the grapheme clusters of input cyclically
// until the result occupies target terminal columns. Expansion stops at a
// whole-cluster boundary and never exceeds the target, so a trailing wide
// glyph that would overshoot is left off. Inputs already at or beyond the
// target are returned unchanged.
func ExpandToVisualWidth(input string, target int) string {
	if input == "" {
		return input
	}
	current := StringWidth(input)
	if target == 0 || current == 0 || current >= target {
		return input
	}

	type cluster struct {
		str   string
		width int
	}
	pos := positions(input)
	clusters := make([]cluster, 0, len(pos))
	for _, p := range pos {
		clusters = append(clusters, cluster{str: p, width: runewidth.StringWidth(Strip(p))})
	}

	var result strings.Builder
	width := 0
	for i := 0; width < target; i++ {
		c := clusters[i%len(clusters)]
		if c.width == 0 {
			result.WriteString(c.str)
			continue
		}
		if width+c.width > target {
			break
		}
		result.WriteString(c.str)
		width += c.width
	}
	return result.String()
}
