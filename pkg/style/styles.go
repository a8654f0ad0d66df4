// Package style holds the lipgloss styles and pterm printers used by the
// command-line output (template listings, errors). Rendered titles get their
// colors from the color resolver instead, so nothing here leaks into the
// transform pipeline.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	TemplateNameStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	SourceStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	PatternStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// ErrorPrinter is the pterm printer used for fatal CLI errors.
var ErrorPrinter = pterm.PrefixPrinter{
	MessageStyle: pterm.NewStyle(pterm.FgRed),
	Prefix: pterm.Prefix{
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgWhite),
		Text:  " ERROR ",
	},
}

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Italic(s string) string {
	return lipgloss.NewStyle().Italic(true).Render(s)
}
