// Package padding expands marker-delimited fill groups so a line reaches an
// exact target column count.
//
// Fill groups are delimited by two Private Use Area sentinels inserted by
// the rendering stage. Group content is ordinary text and may carry escape
// sequences from earlier styling; expansion repeats the visible content
// cyclically and re-attaches the styling around the result. The sentinels
// never survive processing.
package padding

import (
	"strings"

	"github.com/arthur-debert/titular/pkg/ansi"
	"github.com/arthur-debert/titular/pkg/logging"
	"github.com/arthur-debert/titular/pkg/terminal"
)

// Fill group sentinels, one code point each from Plane 15's Private Use
// Area. Chosen because no upstream renderer output can contain them.
const (
	StartMarker rune = '\U000F0000'
	EndMarker   rune = '\U000F0001'
)

// Mark wraps text in fill-group sentinels for later expansion.
func Mark(text string) string {
	return string(StartMarker) + text + string(EndMarker)
}

// matchedGroup records one marker-delimited span while a line is being
// processed. Offsets are byte positions into the line and include the
// sentinels.
type matchedGroup struct {
	content string
	start   int
	end     int
}

// Engine expands fill groups against a width provider.
type Engine struct {
	width terminal.WidthFunc
}

// NewEngine returns an Engine that asks width for the target column count
// on every line.
func NewEngine(width terminal.WidthFunc) *Engine {
	if width == nil {
		width = terminal.Width
	}
	return &Engine{width: width}
}

// Process expands fill groups in content, line by line. Lines without
// marker pairs pass through unchanged.
func (e *Engine) Process(content string) string {
	if !strings.ContainsRune(content, StartMarker) && !strings.ContainsRune(content, EndMarker) {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = e.processLine(line)
	}
	return strings.Join(lines, "\n")
}

func (e *Engine) processLine(line string) string {
	if !strings.ContainsRune(line, StartMarker) && !strings.ContainsRune(line, EndMarker) {
		return line
	}

	// Groups that render nothing contribute nothing; delete them outright,
	// escape sequences included, before any width accounting.
	line = stripEmptyGroups(line)

	groups := findGroups(line)
	if len(groups) == 0 {
		// Only unbalanced markers remain; they must never reach the
		// terminal.
		return stripMarkers(line)
	}

	target := e.width()
	occupied := ansi.StringWidth(stripMarkers(line))
	remaining := 0
	if target > occupied {
		remaining = target - occupied
	}

	base := remaining / len(groups)
	rem := remaining % len(groups)

	log := logging.GetLogger("padding")
	log.Trace().
		Int("target", target).Int("occupied", occupied).
		Int("groups", len(groups)).Int("base", base).Int("rem", rem).
		Msg("distributing fill")

	// Splice right to left so earlier offsets stay valid. The group spliced
	// last (the leftmost) absorbs the rounding remainder.
	out := line
	for i := len(groups) - 1; i >= 0; i-- {
		extra := base
		if i == 0 {
			extra += rem
		}
		g := groups[i]
		out = out[:g.start] + expandGroup(g.content, extra) + out[g.end:]
	}

	out = stripMarkers(out)
	// Lines whose fixed text already exceeds the target are clamped. A zero
	// target means there is no terminal to fit; the line passes through.
	if target > 0 {
		out = ansi.Truncate(out, target, ansi.TruncateResetAfter)
	}
	return out
}

// findGroups scans a line for non-nested, non-overlapping marker pairs. An
// unmatched sentinel ends the scan; whatever it delimits is not a group.
func findGroups(line string) []matchedGroup {
	var groups []matchedGroup
	offset := 0
	for {
		rel := strings.IndexRune(line[offset:], StartMarker)
		if rel < 0 {
			break
		}
		start := offset + rel
		contentFrom := start + len(string(StartMarker))

		endRel := strings.IndexRune(line[contentFrom:], EndMarker)
		if endRel < 0 {
			break
		}
		contentTo := contentFrom + endRel
		end := contentTo + len(string(EndMarker))

		groups = append(groups, matchedGroup{
			content: line[contentFrom:contentTo],
			start:   start,
			end:     end,
		})
		offset = end
	}
	return groups
}

// stripEmptyGroups removes every marker pair whose content is visually
// empty, content included.
func stripEmptyGroups(line string) string {
	groups := findGroups(line)
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if ansi.IsVisuallyEmpty(g.content) {
			line = line[:g.start] + line[g.end:]
		}
	}
	return line
}

// stripMarkers removes any sentinel runes, matched or stray.
func stripMarkers(s string) string {
	return strings.Map(func(r rune) rune {
		if r == StartMarker || r == EndMarker {
			return -1
		}
		return r
	}, s)
}

// expandGroup grows a group's visible content by extra columns. Escape
// sequences before the first and after the last visible character are
// carried over to the same positions around the expanded text; expansion
// itself works on the stripped content so repeats stay style-neutral.
func expandGroup(content string, extra int) string {
	if extra == 0 {
		return content
	}

	stripped := ansi.Strip(content)
	width := ansi.StringWidth(stripped)
	if width == 0 {
		return content
	}

	prefix, suffix := escapeAffixes(content)
	return prefix + ansi.ExpandToVisualWidth(stripped, width+extra) + suffix
}

// escapeAffixes returns the escape sequences appearing before the first
// visible character and after the last one.
func escapeAffixes(content string) (string, string) {
	var prefix, suffix strings.Builder
	seenText := false
	for _, tok := range ansi.Tokenize(content) {
		switch {
		case tok.Kind == ansi.TextToken:
			seenText = true
			suffix.Reset()
		case seenText:
			suffix.WriteString(tok.Value)
		default:
			prefix.WriteString(tok.Value)
		}
	}
	return prefix.String(), suffix.String()
}
