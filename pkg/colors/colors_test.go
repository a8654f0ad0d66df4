package colors_test

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/titular/pkg/ansi"
	"github.com/arthur-debert/titular/pkg/colors"
	"github.com/arthur-debert/titular/pkg/errors"
	"github.com/arthur-debert/titular/pkg/fallback"
)

func colorMap(values map[string]string) *fallback.Map {
	return fallback.NewMap(fallback.NewStatic("colors", values))
}

func TestResolveTerminalForms(t *testing.T) {
	empty := colorMap(nil)

	tests := []struct {
		name       string
		descriptor string
		expected   termenv.Color
	}{
		{
			name:       "rgb",
			descriptor: "RGB(70,130,180)",
			expected:   termenv.RGBColor("#4682b4"),
		},
		{
			name:       "rgb with internal whitespace",
			descriptor: "RGB( 70 , 130 , 180 )",
			expected:   termenv.RGBColor("#4682b4"),
		},
		{
			name:       "rgb lowercase",
			descriptor: "rgb(0,0,0)",
			expected:   termenv.RGBColor("#000000"),
		},
		{
			name:       "fixed",
			descriptor: "FIXED(42)",
			expected:   termenv.ANSI256Color(42),
		},
		{
			name:       "fixed with whitespace",
			descriptor: "fixed( 7 )",
			expected:   termenv.ANSI256Color(7),
		},
		{
			name:       "named",
			descriptor: "NAME(red)",
			expected:   termenv.ANSIRed,
		},
		{
			name:       "named mixed case",
			descriptor: "name(Blue)",
			expected:   termenv.ANSIBlue,
		},
		{
			name:       "purple maps to magenta",
			descriptor: "NAME(purple)",
			expected:   termenv.ANSIMagenta,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := colors.Resolve(empty, tt.descriptor)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestResolveUnknownNameIsNoColor(t *testing.T) {
	c, err := colors.Resolve(colorMap(nil), "NAME(chartreuse)")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestResolveMalformedDescriptors(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
	}{
		{name: "rgb channel overflow", descriptor: "RGB(300,0,0)"},
		{name: "fixed index overflow", descriptor: "FIXED(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := colors.Resolve(colorMap(nil), tt.descriptor)
			require.Error(t, err)
			assert.Equal(t, errors.ErrMalformedColor, errors.GetCode(err))
		})
	}
}

func TestResolveAliasChain(t *testing.T) {
	m := colorMap(map[string]string{
		"main":  "steel",
		"steel": "RGB(70,130,180)",
	})

	c, err := colors.Resolve(m, "main")
	require.NoError(t, err)
	assert.Equal(t, termenv.RGBColor("#4682b4"), c)
}

func TestResolveMissingAliasIsNoColor(t *testing.T) {
	c, err := colors.Resolve(colorMap(nil), "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestResolveAliasCycleIsNoColor(t *testing.T) {
	m := colorMap(map[string]string{
		"a": "b",
		"b": "a",
	})

	c, err := colors.Resolve(m, "a")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestFormat(t *testing.T) {
	m := colorMap(map[string]string{
		"main": "NAME(red)",
	})

	tests := []struct {
		name     string
		req      colors.StyleRequest
		expected string
	}{
		{
			name:     "foreground",
			req:      colors.StyleRequest{Foreground: "main", Scope: colors.ScopeFG},
			expected: "\x1b[31mtext\x1b[0m",
		},
		{
			name:     "background",
			req:      colors.StyleRequest{Background: "main", Scope: colors.ScopeBG},
			expected: "\x1b[41mtext\x1b[0m",
		},
		{
			name: "both",
			req: colors.StyleRequest{
				Foreground: "NAME(white)",
				Background: "main",
				Scope:      colors.ScopeBoth,
			},
			expected: "\x1b[37;41mtext\x1b[0m",
		},
		{
			name:     "truecolor foreground",
			req:      colors.StyleRequest{Foreground: "RGB(70,130,180)", Scope: colors.ScopeFG},
			expected: "\x1b[38;2;70;130;180mtext\x1b[0m",
		},
		{
			name:     "truecolor background keeps exact channels",
			req:      colors.StyleRequest{Background: "RGB(70,130,180)", Scope: colors.ScopeBG},
			expected: "\x1b[48;2;70;130;180mtext\x1b[0m",
		},
		{
			name:     "fixed foreground",
			req:      colors.StyleRequest{Foreground: "FIXED(42)", Scope: colors.ScopeFG},
			expected: "\x1b[38;5;42mtext\x1b[0m",
		},
		{
			name:     "unresolved leaves text unstyled",
			req:      colors.StyleRequest{Foreground: "missing", Scope: colors.ScopeFG},
			expected: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := colors.Format(m, "text", tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	m := colorMap(map[string]string{"main": "RGB(1,2,3)"})
	out, err := colors.Format(m, "Hello 🦀", colors.StyleRequest{
		Foreground: "main",
		Scope:      colors.ScopeFG,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello 🦀", ansi.Strip(out))
}

func TestFormatPropagatesMalformedDescriptor(t *testing.T) {
	_, err := colors.Format(colorMap(nil), "text", colors.StyleRequest{
		Foreground: "RGB(999,0,0)",
		Scope:      colors.ScopeFG,
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrMalformedColor, errors.GetCode(err))
}
