package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/arthur-debert/titular/pkg/ansi"
	"github.com/arthur-debert/titular/pkg/fallback"
)

// Scope selects which channels of a style request apply.
type Scope int

const (
	// ScopeFG styles the foreground only.
	ScopeFG Scope = iota
	// ScopeBG styles the background only.
	ScopeBG
	// ScopeBoth styles foreground and background.
	ScopeBoth
)

// StyleRequest asks for a text fragment to be styled. Foreground and
// Background hold color descriptors or alias keys; the zero value requests
// no styling.
type StyleRequest struct {
	Foreground string
	Background string
	Scope      Scope
}

// Format wraps text in the SGR sequences selected by the request, resolving
// descriptors through the layered map. When nothing resolves on the
// requested scope the text comes back unchanged. Pure function of its
// inputs.
func Format(colors *fallback.Map, text string, req StyleRequest) (string, error) {
	var seqs []string

	if req.Scope == ScopeFG || req.Scope == ScopeBoth {
		c, err := Resolve(colors, req.Foreground)
		if err != nil {
			return "", err
		}
		if c != nil {
			seqs = append(seqs, sequence(c, false))
		}
	}
	if req.Scope == ScopeBG || req.Scope == ScopeBoth {
		c, err := Resolve(colors, req.Background)
		if err != nil {
			return "", err
		}
		if c != nil {
			seqs = append(seqs, sequence(c, true))
		}
	}

	if len(seqs) == 0 {
		return text, nil
	}
	return termenv.CSI + strings.Join(seqs, ";") + "m" + text + ansi.Reset, nil
}

// sequence emits the SGR parameters for a color. termenv.RGBColor.Sequence
// converts its hex form through a float colorspace and can come back one
// off per channel, so truecolor parameters are rebuilt from the exact
// channel values.
func sequence(c termenv.Color, bg bool) string {
	rgb, ok := c.(termenv.RGBColor)
	if !ok {
		return c.Sequence(bg)
	}
	hex := strings.TrimPrefix(string(rgb), "#")
	if len(hex) != 6 {
		return c.Sequence(bg)
	}
	var channels [3]uint64
	for i := range channels {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return c.Sequence(bg)
		}
		channels[i] = v
	}
	prefix := termenv.Foreground
	if bg {
		prefix = termenv.Background
	}
	return fmt.Sprintf("%s;2;%d;%d;%d", prefix, channels[0], channels[1], channels[2])
}
