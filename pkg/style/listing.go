package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/titular/pkg/config"
)

// RenderTemplateList renders the available templates, one block per
// template with its description and source.
func RenderTemplateList(templates []*config.Template) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Available templates"))
	b.WriteString("\n\n")
	for _, tmpl := range templates {
		b.WriteString(TemplateNameStyle.Render(tmpl.Details.Name))
		if tmpl.Source != "built-in" {
			b.WriteString(" ")
			b.WriteString(SourceStyle.Render("(user)"))
		}
		b.WriteString("\n")
		if tmpl.Details.Description != "" {
			b.WriteString(Indent(NormalStyle.Render(tmpl.Details.Description), 1))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderTemplateDetails renders a single template's metadata and pattern.
func RenderTemplateDetails(tmpl *config.Template) string {
	var b strings.Builder
	b.WriteString(TemplateNameStyle.Render(tmpl.Details.Name))
	b.WriteString("\n")
	if tmpl.Details.Description != "" {
		b.WriteString(NormalStyle.Render(tmpl.Details.Description))
		b.WriteString("\n")
	}
	b.WriteString(MutedStyle.Render(fmt.Sprintf("source: %s", tmpl.Source)))
	b.WriteString("\n\n")
	b.WriteString(PatternStyle.Render(tmpl.Pattern))
	if len(tmpl.Vars) > 0 {
		b.WriteString("\n\n")
		b.WriteString(TitleStyle.Render("Variables"))
		b.WriteString("\n")
		for _, kv := range sortedVars(tmpl.Vars) {
			b.WriteString(Indent(fmt.Sprintf("%s = %q", kv[0], kv[1]), 1))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func sortedVars(vars map[string]string) [][2]string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([][2]string, 0, len(names))
	for _, name := range names {
		out = append(out, [2]string{name, vars[name]})
	}
	return out
}
