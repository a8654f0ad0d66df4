// Package template renders a title pattern into the pre-layout string
// consumed by the transform pipeline: variables are substituted from the
// layered context, and per-variable expressions apply colors, suffixes,
// surrounds and fill-group markers.
//
// Pattern syntax, e.g. "${f:fg[main]pad} ${text:fg[secondary]} ${f:fg[main]pad}":
//
//	${name}                substitute the variable, empty when missing
//	${name:fg[c]}          color the value's foreground with descriptor c
//	${name:bg[c]}          color the value's background
//	${name:pad}            mark the value as a stretchable fill group
//	${name:surround}       wrap the value in the configured surround pair
//	${name:hide[flag]}     drop the value unless the context flag is active
//	${name:...+[sfx]}      append sfx before styling (styled together)
//	${name:...%[sfx]}      append sfx after styling (suffix stays plain)
package template

import (
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/titular/pkg/colors"
	"github.com/arthur-debert/titular/pkg/fallback"
	"github.com/arthur-debert/titular/pkg/logging"
	"github.com/arthur-debert/titular/pkg/padding"
)

const (
	defaultTimeFormat  = "15:04"
	defaultTimePattern = " [${time}]"
)

var (
	varGroupRegex = regexp.MustCompile(`\$\{([^}]+)\}`)
	varRegex      = regexp.MustCompile(`^([^:]+)(?::([^+%]*))?(?:([+%])\[([^\]]*)\])?$`)
	exprRegex     = regexp.MustCompile(`(pad|fit|surround|hide\[([^\]]*)\]|fg\[([^\]]*)\]|bg\[([^\]]*)\])`)
)

// Renderer substitutes pattern variables from an immutable layered context.
type Renderer struct {
	ctx    *fallback.Map
	colors *fallback.Map
	now    func() time.Time
	log    zerolog.Logger
}

// NewRenderer builds a renderer over the given context and color maps.
func NewRenderer(ctx, colorMap *fallback.Map) *Renderer {
	return &Renderer{
		ctx:    ctx,
		colors: colorMap,
		now:    time.Now,
		log:    logging.GetLogger("template"),
	}
}

// expression is the parsed form of one ${...} group.
type expression struct {
	name       string
	fg, bg     string
	pad        bool
	surround   bool
	hideKey    string
	suffix     string
	suffixJoin bool // true for +[...], false for %[...]
	hasSuffix  bool
}

// Render expands all variable groups in pattern. The first malformed color
// descriptor aborts the render.
func (r *Renderer) Render(pattern string) (string, error) {
	if r.ctx.IsActive("with-time") {
		pattern += r.timePattern()
	}

	var renderErr error
	out := varGroupRegex.ReplaceAllStringFunc(pattern, func(group string) string {
		if renderErr != nil {
			return ""
		}
		expanded, err := r.renderVar(group[2 : len(group)-1])
		if err != nil {
			renderErr = err
			return ""
		}
		return expanded
	})
	if renderErr != nil {
		return "", renderErr
	}
	return out, nil
}

func (r *Renderer) renderVar(spec string) (string, error) {
	expr, ok := parseExpression(spec)
	if !ok {
		// Not variable syntax; leave the group as literal text.
		r.log.Debug().Str("var", spec).Msg("unparseable variable group")
		return "${" + spec + "}", nil
	}

	if expr.hideKey != "" && !r.ctx.IsActive(expr.hideKey) {
		return "", nil
	}

	value := r.lookup(expr.name)

	if expr.surround && value != "" {
		value = r.surroundPair(value)
	}
	if expr.hasSuffix && expr.suffixJoin {
		value += expr.suffix
	}

	styled, err := r.style(value, expr)
	if err != nil {
		return "", err
	}

	if expr.hasSuffix && !expr.suffixJoin {
		styled += expr.suffix
	}
	if expr.pad {
		styled = padding.Mark(styled)
	}
	return styled, nil
}

func (r *Renderer) style(value string, expr expression) (string, error) {
	if expr.fg == "" && expr.bg == "" {
		return value, nil
	}
	req := colors.StyleRequest{Foreground: expr.fg, Background: expr.bg}
	switch {
	case expr.fg != "" && expr.bg != "":
		req.Scope = colors.ScopeBoth
	case expr.bg != "":
		req.Scope = colors.ScopeBG
	default:
		req.Scope = colors.ScopeFG
	}
	return colors.Format(r.colors, value, req)
}

// lookup resolves a variable name, with "time" synthesized from the clock
// when not explicitly set.
func (r *Renderer) lookup(name string) string {
	if v, ok := r.ctx.Get(name); ok {
		return v
	}
	if name == "time" {
		format, ok := r.ctx.Get("defaults.time_format")
		if !ok {
			format = defaultTimeFormat
		}
		return r.now().Format(format)
	}
	return ""
}

func (r *Renderer) surroundPair(value string) string {
	start, ok := r.ctx.Get("surround_start")
	if !ok {
		start, _ = r.ctx.Get("defaults.surround_start")
	}
	end, ok := r.ctx.Get("surround_end")
	if !ok {
		end, _ = r.ctx.Get("defaults.surround_end")
	}
	return start + value + end
}

func (r *Renderer) timePattern() string {
	if p, ok := r.ctx.Get("defaults.time_pattern"); ok {
		return p
	}
	return defaultTimePattern
}

func parseExpression(spec string) (expression, bool) {
	m := varRegex.FindStringSubmatch(spec)
	if m == nil {
		return expression{}, false
	}

	expr := expression{name: m[1]}
	if m[3] != "" {
		expr.hasSuffix = true
		expr.suffix = m[4]
		expr.suffixJoin = m[3] == "+"
	}

	for _, em := range exprRegex.FindAllStringSubmatch(m[2], -1) {
		switch {
		case em[1] == "pad":
			expr.pad = true
		case em[1] == "fit":
			// Width fitting happens line-wide in the padding stage;
			// nothing to record per variable.
		case em[1] == "surround":
			expr.surround = true
		case strings.HasPrefix(em[1], "hide"):
			expr.hideKey = em[2]
		case strings.HasPrefix(em[1], "fg"):
			expr.fg = em[3]
		case strings.HasPrefix(em[1], "bg"):
			expr.bg = em[4]
		}
	}
	return expr, true
}
