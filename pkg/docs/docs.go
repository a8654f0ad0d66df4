// Package docs serves the embedded user guides as rendered terminal
// markdown.
package docs

import (
	"embed"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/titular/pkg/errors"
)

//go:embed topics/*.md
var topicsFS embed.FS

// Topic is one embedded guide.
type Topic struct {
	Name    string
	Content string
}

// List returns the available topics sorted by name.
func List() ([]Topic, error) {
	entries, err := topicsFS.ReadDir("topics")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to read embedded topics")
	}

	topics := make([]Topic, 0, len(entries))
	for _, entry := range entries {
		data, err := topicsFS.ReadFile("topics/" + entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal,
				"failed to read topic %s", entry.Name())
		}
		topics = append(topics, Topic{
			Name:    strings.TrimSuffix(entry.Name(), ".md"),
			Content: string(data),
		})
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })
	return topics, nil
}

// Get returns a topic by name.
func Get(name string) (Topic, error) {
	data, err := topicsFS.ReadFile("topics/" + name + ".md")
	if err != nil {
		return Topic{}, errors.Newf(errors.ErrInvalidInput, "unknown topic %q", name)
	}
	return Topic{Name: name, Content: string(data)}, nil
}

// Render converts a topic's markdown to terminal output. Rendering failures
// fall back to the raw markdown.
func Render(topic Topic, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return topic.Content
	}
	rendered, err := renderer.Render(topic.Content)
	if err != nil {
		return topic.Content
	}
	return rendered
}
