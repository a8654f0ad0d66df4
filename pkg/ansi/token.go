// Package ansi provides the escape-sequence-aware text primitives used by
// the layout engine: a tokenizer, visible width measurement, cyclic
// expansion, truncation, and a normalizer that keeps nested color state
// correct across resets.
package ansi

import "strings"

// Reset is the full SGR reset sequence.
const Reset = "\x1b[0m"

const esc = '\x1b'

// TokenKind discriminates tokenizer output.
type TokenKind int

const (
	// TextToken is a run of printable content.
	TextToken TokenKind = iota
	// EscapeToken is a single complete escape sequence.
	EscapeToken
)

// Token is one unit of a tokenized stream: either a text run or one escape
// sequence.
type Token struct {
	Kind  TokenKind
	Value string
}

// Tokenize splits s into text runs and escape sequences. Escape sequences
// are kept whole; a truncated sequence at end of input is emitted as-is so
// no bytes are ever dropped.
func Tokenize(s string) []Token {
	var tokens []Token
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, Token{Kind: TextToken, Value: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(s); {
		if s[i] != esc {
			text.WriteByte(s[i])
			i++
			continue
		}
		flush()
		end := escapeEnd(s, i)
		tokens = append(tokens, Token{Kind: EscapeToken, Value: s[i:end]})
		i = end
	}
	flush()
	return tokens
}

// escapeEnd returns the index one past the escape sequence starting at i.
// CSI sequences run to their final byte in the 0x40-0x7E range; other ESC
// sequences are two bytes.
func escapeEnd(s string, i int) int {
	if i+1 >= len(s) {
		return len(s)
	}
	if s[i+1] != '[' {
		return i + 2
	}
	for j := i + 2; j < len(s); j++ {
		if s[j] >= 0x40 && s[j] <= 0x7e {
			return j + 1
		}
	}
	return len(s)
}
