package ansi

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TruncateBehavior selects how escape sequences are handled after the
// truncation point.
type TruncateBehavior int

const (
	// TruncateKeepNone drops everything past the truncation point.
	TruncateKeepNone TruncateBehavior = iota
	// TruncatePreserveRemaining re-appends the escape sequences that
	// appeared after the truncation point, so no style transitions are
	// lost.
	TruncatePreserveRemaining
	// TruncateResetAfter appends a single reset after the truncated text
	// when it contains any escape sequence, leaving the terminal clean.
	TruncateResetAfter
)

// Truncate cuts s to at most width terminal columns, never splitting a
// grapheme cluster, and applies the given behavior to escape sequences past
// the cut.
func Truncate(s string, width int, behavior TruncateBehavior) string {
	if StringWidth(s) <= width {
		return s
	}

	var kept strings.Builder
	var rest strings.Builder
	current := 0
	full := false

	for _, tok := range Tokenize(s) {
		if full {
			rest.WriteString(tok.Value)
			continue
		}
		if tok.Kind == EscapeToken {
			// Escapes at or past the cut belong to the remainder so
			// TruncatePreserveRemaining can re-apply them.
			if current < width {
				kept.WriteString(tok.Value)
			} else {
				rest.WriteString(tok.Value)
			}
			continue
		}
		g := uniseg.NewGraphemes(tok.Value)
		for g.Next() {
			cl := g.Str()
			if full {
				rest.WriteString(cl)
				continue
			}
			w := runewidth.StringWidth(cl)
			if current+w > width {
				full = true
				rest.WriteString(cl)
				continue
			}
			current += w
			kept.WriteString(cl)
		}
	}

	result := kept.String()
	switch behavior {
	case TruncatePreserveRemaining:
		for _, tok := range Tokenize(rest.String()) {
			if tok.Kind == EscapeToken {
				result += tok.Value
			}
		}
	case TruncateResetAfter:
		if strings.Contains(result, "\x1b[") {
			result = strings.TrimSuffix(result, Reset) + Reset
		}
	}
	return result
}
