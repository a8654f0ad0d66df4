package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/titular/pkg/errors"
	"github.com/arthur-debert/titular/pkg/fallback"
	"github.com/arthur-debert/titular/pkg/logging"
)

const templateExt = ".tml"

// TemplateDetails carries a template's display metadata.
type TemplateDetails struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Template is a parsed template file.
type Template struct {
	Details TemplateDetails   `toml:"details"`
	Pattern string            `toml:"pattern"`
	Vars    map[string]string `toml:"vars"`

	// Source records where the template was loaded from: "built-in" or a
	// file path.
	Source string `toml:"-"`
}

// VarsProvider exposes the template's [vars] table as a fallback provider.
func (t *Template) VarsProvider() fallback.Provider {
	vars := t.Vars
	if vars == nil {
		vars = map[string]string{}
	}
	return fallback.NewStatic("template-vars", vars)
}

// ParseTemplate decodes a template file's contents.
func ParseTemplate(data []byte, source string) (*Template, error) {
	var t Template
	if err := gotoml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateParse,
			"failed to parse template from %s", source)
	}
	if t.Pattern == "" {
		return nil, errors.Newf(errors.ErrTemplateParse,
			"template from %s has no pattern", source)
	}
	t.Source = source
	return &t, nil
}

// FindTemplate locates a template by name. User templates in
// UserTemplatesDir take precedence over the built-in set.
func FindTemplate(name string) (*Template, error) {
	log := logging.GetLogger("config")
	fileName := templateFileName(name)

	userPath := filepath.Join(UserTemplatesDir(), fileName)
	if data, err := os.ReadFile(userPath); err == nil {
		log.Debug().Str("path", userPath).Msg("using user template")
		return ParseTemplate(data, userPath)
	}

	data, err := builtinTemplates.ReadFile("templates/" + fileName)
	if err != nil {
		return nil, errors.Newf(errors.ErrTemplateNotFound,
			"template %q not found", name)
	}
	return ParseTemplate(data, "built-in")
}

// ListTemplates returns every available template sorted by name. A user
// template shadows a built-in template with the same name.
func ListTemplates() ([]*Template, error) {
	log := logging.GetLogger("config")
	byName := make(map[string]*Template)

	entries, err := fs.ReadDir(builtinTemplates, "templates")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to read built-in templates")
	}
	for _, entry := range entries {
		data, err := builtinTemplates.ReadFile("templates/" + entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal,
				"failed to read built-in template %s", entry.Name())
		}
		t, err := ParseTemplate(data, "built-in")
		if err != nil {
			return nil, err
		}
		byName[strings.TrimSuffix(entry.Name(), templateExt)] = t
	}

	userEntries, err := os.ReadDir(UserTemplatesDir())
	if err == nil {
		for _, entry := range userEntries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), templateExt) {
				continue
			}
			path := filepath.Join(UserTemplatesDir(), entry.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("skipping unreadable template")
				continue
			}
			t, err := ParseTemplate(data, path)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("skipping malformed template")
				continue
			}
			byName[strings.TrimSuffix(entry.Name(), templateExt)] = t
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Template, 0, len(names))
	for _, name := range names {
		out = append(out, byName[name])
	}
	return out, nil
}
