// Package transform runs the fixed sequence of text stages that turns a
// title pattern into final terminal output: render, pad, terminate the
// line, normalize escape nesting. The stage set is closed; each stage is a
// pure text-to-text step and the first failure aborts the run.
package transform

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/titular/pkg/ansi"
	"github.com/arthur-debert/titular/pkg/errors"
	"github.com/arthur-debert/titular/pkg/fallback"
	"github.com/arthur-debert/titular/pkg/logging"
	"github.com/arthur-debert/titular/pkg/padding"
	"github.com/arthur-debert/titular/pkg/terminal"
)

// Stage identifies one pipeline step.
type Stage int

const (
	// StageRender expands the template into the pre-layout string.
	StageRender Stage = iota
	// StagePad expands fill groups to the target width.
	StagePad
	// StageLineEnding appends the trailing newline unless suppressed.
	StageLineEnding
	// StageNormalize fixes escape nesting across resets.
	StageNormalize
)

// stages run strictly in this order.
var stages = []Stage{StageRender, StagePad, StageLineEnding, StageNormalize}

// String returns the stage name used in error reporting.
func (s Stage) String() string {
	switch s {
	case StageRender:
		return "render"
	case StagePad:
		return "pad"
	case StageLineEnding:
		return "line-ending"
	case StageNormalize:
		return "normalize"
	default:
		return "unknown"
	}
}

// Renderer is the external collaborator that turns a pattern plus context
// into the pre-layout string containing fill markers and inline styling.
type Renderer interface {
	Render(pattern string) (string, error)
}

// Pipeline applies the stage sequence against an immutable context. Build
// one per render pass; it holds no mutable state afterwards.
type Pipeline struct {
	renderer Renderer
	ctx      *fallback.Map
	width    terminal.WidthFunc
	log      zerolog.Logger
}

// New builds a pipeline. width supplies the target column count for the pad
// stage; nil means probe the attached terminal.
func New(renderer Renderer, ctx *fallback.Map, width terminal.WidthFunc) *Pipeline {
	if width == nil {
		width = terminal.Width
	}
	return &Pipeline{
		renderer: renderer,
		ctx:      ctx,
		width:    width,
		log:      logging.GetLogger("transform"),
	}
}

// Run processes input through every stage in order. The error identifies
// the failing stage; there is no partial output.
func (p *Pipeline) Run(input string) (string, error) {
	text := input
	for _, stage := range stages {
		out, err := p.apply(stage, text)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrPipelineStage,
				"stage %s failed", stage)
		}
		text = out
	}
	return text, nil
}

func (p *Pipeline) apply(stage Stage, text string) (string, error) {
	switch stage {
	case StageRender:
		return p.renderer.Render(text)
	case StagePad:
		return padding.NewEngine(p.targetWidth()).Process(text), nil
	case StageLineEnding:
		if p.ctx.IsActive("skip-newline") {
			return text, nil
		}
		return text + "\n", nil
	case StageNormalize:
		return ansi.Normalize(text), nil
	}
	return "", errors.Newf(errors.ErrInternal, "unknown stage %d", stage)
}

// targetWidth applies the context's percentage override, when present, to
// the base width provider.
func (p *Pipeline) targetWidth() terminal.WidthFunc {
	v, ok := p.ctx.Get("width")
	if !ok {
		return p.width
	}
	percent, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || percent < 0 || percent > 100 {
		p.log.Debug().Str("width", v).Msg("ignoring invalid width override")
		return p.width
	}
	return terminal.Scaled(p.width, percent)
}
