// Package colors resolves color descriptor strings against a layered
// configuration map and emits the matching SGR sequences.
//
// A descriptor takes one of three terminal forms:
//
//	RGB(r,g,b)  truecolor, channels 0-255
//	FIXED(n)    256-color palette index
//	NAME(word)  one of the eight base terminal colors
//
// Any other string is an alias: it is looked up in the layered map and the
// result parsed again, so configurations can chain semantic names
// ("main" -> "steel" -> "RGB(70,130,180)").
package colors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/arthur-debert/titular/pkg/errors"
	"github.com/arthur-debert/titular/pkg/fallback"
	"github.com/arthur-debert/titular/pkg/logging"
)

// maxAliasDepth bounds alias indirection; chains deeper than this (which in
// practice means a cycle) resolve to no color.
const maxAliasDepth = 32

var (
	rgbRegex = regexp.MustCompile(`(?i)^RGB\(\s*([0-9]+)\s*,\s*([0-9]+)\s*,\s*([0-9]+)\s*\)$`)
	// Matches FIXED(n) or NAME(word) in one pass, mirroring the alternation
	// used for descriptor classification.
	fixedNameRegex = regexp.MustCompile(`(?i)^(?:(FIXED)\(\s*([0-9]+)\s*\)|(NAME)\(\s*([a-zA-Z]+)\s*\))$`)
)

var namedColors = map[string]termenv.ANSIColor{
	"BLACK":   termenv.ANSIBlack,
	"RED":     termenv.ANSIRed,
	"GREEN":   termenv.ANSIGreen,
	"YELLOW":  termenv.ANSIYellow,
	"BLUE":    termenv.ANSIBlue,
	"PURPLE":  termenv.ANSIMagenta,
	"MAGENTA": termenv.ANSIMagenta,
	"CYAN":    termenv.ANSICyan,
	"WHITE":   termenv.ANSIWhite,
}

// Resolve turns a descriptor (or alias key) into a terminal color. A nil
// color with a nil error means "no color": unknown names, missing aliases
// and over-deep chains all leave text unstyled. Malformed numeric fields in
// RGB/FIXED descriptors are hard errors.
func Resolve(colors *fallback.Map, descriptor string) (termenv.Color, error) {
	log := logging.GetLogger("colors")

	current := descriptor
	for depth := 0; depth < maxAliasDepth; depth++ {
		if m := rgbRegex.FindStringSubmatch(current); m != nil {
			return parseRGB(m)
		}
		if m := fixedNameRegex.FindStringSubmatch(current); m != nil {
			return parseFixedOrName(m)
		}

		next, ok := colors.Get(current)
		if !ok {
			return nil, nil
		}
		current = next
	}

	log.Warn().Str("descriptor", descriptor).Int("depth", maxAliasDepth).
		Msg("color alias chain too deep, leaving text unstyled")
	return nil, nil
}

func parseRGB(m []string) (termenv.Color, error) {
	var channels [3]uint64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(m[i+1], 10, 8)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrMalformedColor,
				"invalid RGB channel %q", m[i+1])
		}
		channels[i] = v
	}
	return termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x",
		channels[0], channels[1], channels[2])), nil
}

func parseFixedOrName(m []string) (termenv.Color, error) {
	if strings.EqualFold(m[1], "FIXED") {
		n, err := strconv.ParseUint(m[2], 10, 8)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrMalformedColor,
				"invalid FIXED index %q", m[2])
		}
		return termenv.ANSI256Color(n), nil
	}
	if c, ok := namedColors[strings.ToUpper(m[4])]; ok {
		return c, nil
	}
	// Unknown names mean "leave text unstyled", not an error.
	return nil, nil
}
