package main

import (
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		templateName = ""
		setValues = nil
		widthPercent = 0
		skipNewline = false
		withTime = false
	})
}

func TestParseOverrides(t *testing.T) {
	tests := []struct {
		name     string
		pairs    []string
		expected map[string]string
	}{
		{
			name:     "simple pairs",
			pairs:    []string{"f=~", "main=NAME(red)"},
			expected: map[string]string{"f": "~", "main": "NAME(red)"},
		},
		{
			name:     "value containing equals",
			pairs:    []string{"note=a=b"},
			expected: map[string]string{"note": "a=b"},
		},
		{
			name:     "malformed entries dropped",
			pairs:    []string{"novalue", "=nokey", "ok=1"},
			expected: map[string]string{"ok": "1"},
		},
		{
			name:     "empty value kept",
			pairs:    []string{"f="},
			expected: map[string]string{"f": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseOverrides(tt.pairs))
		})
	}
}

func TestRenderTitle(t *testing.T) {
	isolateConfig(t)
	resetFlags(t)

	out, err := renderTitle([]string{"Hello", "World"})
	require.NoError(t, err)
	assert.Contains(t, out, "Hello World")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderTitleSkipNewline(t *testing.T) {
	isolateConfig(t)
	resetFlags(t)
	skipNewline = true

	out, err := renderTitle([]string{"Hi"})
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestRenderTitleTextFromSetFlag(t *testing.T) {
	isolateConfig(t)
	resetFlags(t)
	setValues = []string{"text=Override"}

	out, err := renderTitle(nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Override")
}

func TestRenderTitlePositionalTextWins(t *testing.T) {
	isolateConfig(t)
	resetFlags(t)
	setValues = []string{"text=Override"}

	out, err := renderTitle([]string{"positional"})
	require.NoError(t, err)
	assert.Contains(t, out, "positional")
	assert.NotContains(t, out, "Override")
}

func TestRenderTitleUnknownTemplate(t *testing.T) {
	isolateConfig(t)
	resetFlags(t)
	templateName = "does-not-exist"

	_, err := renderTitle([]string{"Hi"})
	assert.Error(t, err)
}
