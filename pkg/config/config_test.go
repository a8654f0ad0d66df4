package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useConfigHome points XDG_CONFIG_HOME at a temp dir for the test.
func useConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	useConfigHome(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "basic", cfg.DefaultTemplate())
	assert.Equal(t, "15:04", cfg.String("defaults.time_format"))
	assert.Equal(t, "steel", cfg.String("colors.main"))
}

func TestLoadUserConfigOverridesDefaults(t *testing.T) {
	dir := useConfigHome(t)

	appDir := filepath.Join(dir, "titular")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	userConfig := `
[defaults]
template = "double"

[colors]
main = "RGB(10, 20, 30)"
extra = "NAME(cyan)"
`
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "titular.toml"), []byte(userConfig), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "double", cfg.DefaultTemplate())
	assert.Equal(t, "RGB(10, 20, 30)", cfg.String("colors.main"))
	// Keys absent from the user file keep their defaults.
	assert.Equal(t, "15:04", cfg.String("defaults.time_format"))
	assert.Equal(t, "NAME(cyan)", cfg.String("colors.extra"))
}

func TestLoadMalformedUserConfig(t *testing.T) {
	dir := useConfigHome(t)

	appDir := filepath.Join(dir, "titular")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "titular.toml"), []byte("not [valid"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestConfigProviders(t *testing.T) {
	useConfigHome(t)

	cfg, err := Load()
	require.NoError(t, err)

	full := cfg.Provider()
	assert.True(t, full.Contains("defaults.template"))
	v, ok := full.Resolve("defaults.template")
	assert.True(t, ok)
	assert.Equal(t, "basic", v)
	_, ok = full.Resolve("defaults.nope")
	assert.False(t, ok)

	colors := cfg.Colors()
	v, ok = colors.Resolve("steel")
	assert.True(t, ok)
	assert.Equal(t, "RGB(70,130,180)", v)
}

func TestParseTemplate(t *testing.T) {
	data := []byte(`
pattern = "${text}"

[details]
name = "demo"
description = "a demo template"

[vars]
f = "="
`)
	tmpl, err := ParseTemplate(data, "test")
	require.NoError(t, err)
	assert.Equal(t, "demo", tmpl.Details.Name)
	assert.Equal(t, "${text}", tmpl.Pattern)
	assert.Equal(t, "=", tmpl.Vars["f"])

	vars := tmpl.VarsProvider()
	v, ok := vars.Resolve("f")
	assert.True(t, ok)
	assert.Equal(t, "=", v)
}

func TestParseTemplateErrors(t *testing.T) {
	_, err := ParseTemplate([]byte("not [valid"), "test")
	assert.Error(t, err)

	_, err = ParseTemplate([]byte(`[details]
name = "empty"`), "test")
	assert.Error(t, err, "template without a pattern is rejected")
}

func TestBuiltinTemplatesHavePatterns(t *testing.T) {
	useConfigHome(t)

	for _, name := range []string{"basic", "double", "left"} {
		tmpl, err := FindTemplate(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, tmpl.Pattern, name)
		assert.NotEmpty(t, tmpl.Details.Name, name)
	}
}

func TestFindTemplateBuiltin(t *testing.T) {
	useConfigHome(t)

	tmpl, err := FindTemplate("basic")
	require.NoError(t, err)
	assert.Equal(t, "built-in", tmpl.Source)
	assert.NotEmpty(t, tmpl.Pattern)
}

func TestFindTemplateUserShadowsBuiltin(t *testing.T) {
	dir := useConfigHome(t)

	tmplDir := filepath.Join(dir, "titular", "templates")
	require.NoError(t, os.MkdirAll(tmplDir, 0o755))
	custom := `
pattern = "!! ${text} !!"

[details]
name = "basic"
description = "user override"
`
	path := filepath.Join(tmplDir, "basic.tml")
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))

	tmpl, err := FindTemplate("basic")
	require.NoError(t, err)
	assert.Equal(t, path, tmpl.Source)
	assert.Equal(t, "!! ${text} !!", tmpl.Pattern)
}

func TestFindTemplateNotFound(t *testing.T) {
	useConfigHome(t)

	_, err := FindTemplate("no-such-template")
	assert.Error(t, err)
}

func TestListTemplates(t *testing.T) {
	dir := useConfigHome(t)

	tmplDir := filepath.Join(dir, "titular", "templates")
	require.NoError(t, os.MkdirAll(tmplDir, 0o755))
	custom := `
pattern = "-- ${text} --"

[details]
name = "mine"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmplDir, "mine.tml"), []byte(custom), 0o644))

	templates, err := ListTemplates()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, tmpl := range templates {
		names[tmpl.Details.Name] = true
	}
	assert.True(t, names["basic"])
	assert.True(t, names["double"])
	assert.True(t, names["left"])
	assert.True(t, names["mine"])
}
