// Package config loads titular's layered configuration: built-in defaults,
// then the user's config file when present. Loaded configuration is exposed
// as fallback providers so callers can stack per-invocation overrides and
// template variables on top.
package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/titular/pkg/errors"
	"github.com/arthur-debert/titular/pkg/fallback"
	"github.com/arthur-debert/titular/pkg/logging"
)

//go:embed titular.toml
var defaultConfig []byte

//go:embed templates/*.tml
var builtinTemplates embed.FS

// appDirName is the directory under the XDG config home.
const appDirName = "titular"

// Config is an immutable snapshot of the merged configuration.
type Config struct {
	k *koanf.Koanf
}

// rawBytesProvider adapts an in-memory byte slice to koanf's Provider
// interface for the embedded defaults.
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}

// Load builds the configuration snapshot: embedded defaults first, then the
// user's titular.toml or titular.yaml when one exists.
func Load() (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	for _, candidate := range []struct {
		name   string
		parser koanf.Parser
	}{
		{name: "titular.toml", parser: toml.Parser()},
		{name: "titular.yaml", parser: yaml.Parser()},
	} {
		path := filepath.Join(xdg.ConfigHome, appDirName, candidate.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), candidate.parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", path)
		}
		log.Debug().Str("path", path).Msg("loaded user config")
		break
	}

	return &Config{k: k}, nil
}

// Provider exposes the full configuration as a fallback provider with
// dot-separated keys ("defaults.template", "colors.main").
func (c *Config) Provider() fallback.Provider {
	return &koanfProvider{name: "config", k: c.k}
}

// Colors exposes the [colors] table with bare keys, the namespace color
// aliases resolve against.
func (c *Config) Colors() fallback.Provider {
	return fallback.NewStatic("config-colors", c.k.StringMap("colors"))
}

// String returns the value at key, or "" when absent.
func (c *Config) String(key string) string {
	return c.k.String(key)
}

// DefaultTemplate names the template used when the caller picks none.
func (c *Config) DefaultTemplate() string {
	return c.k.String("defaults.template")
}

// koanfProvider adapts a koanf tree to the fallback Provider interface.
type koanfProvider struct {
	name string
	k    *koanf.Koanf
}

func (p *koanfProvider) Name() string { return p.name }

func (p *koanfProvider) Contains(key string) bool {
	return p.k.Exists(key)
}

func (p *koanfProvider) Resolve(key string) (string, bool) {
	if !p.k.Exists(key) {
		return "", false
	}
	return p.k.String(key), true
}

// Entries implements fallback.Debugger.
func (p *koanfProvider) Entries() map[string]string {
	out := make(map[string]string)
	for key := range p.k.All() {
		out[key] = p.k.String(key)
	}
	return out
}

// UserTemplatesDir returns the directory user templates are read from.
func UserTemplatesDir() string {
	return filepath.Join(xdg.ConfigHome, appDirName, "templates")
}

// templateFileName normalizes a template name to its on-disk file name.
func templateFileName(name string) string {
	if strings.HasSuffix(name, templateExt) {
		return name
	}
	return name + templateExt
}
