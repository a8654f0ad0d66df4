package ansi

import "strings"

// Normalize rewrites a stream of text and escape sequences so that a full
// reset restores the style that was active before the most recently opened
// one, instead of dropping to the terminal default. Concatenating
// independently styled fragments flattens their nesting; this pass puts it
// back.
//
// A single left-to-right walk maintains a stack of currently open escape
// sequences: non-reset escapes are copied and pushed, a reset is copied and
// pops exactly one entry, re-emitting the remaining stack in opening order.
// At end of stream the stack is drained newest-first so the line is
// self-contained. Text is copied verbatim; the output only ever grows.
func Normalize(input string) string {
	var result strings.Builder
	var stack []string

	for _, tok := range Tokenize(input) {
		if tok.Kind == TextToken {
			result.WriteString(tok.Value)
			continue
		}

		result.WriteString(tok.Value)
		if tok.Value == Reset {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				for _, code := range stack {
					result.WriteString(code)
				}
			}
		} else {
			stack = append(stack, tok.Value)
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		result.WriteString(stack[i])
	}

	return result.String()
}
