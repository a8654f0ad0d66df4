package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/titular/pkg/config"
	"github.com/arthur-debert/titular/pkg/fallback"
	"github.com/arthur-debert/titular/pkg/logging"
	"github.com/arthur-debert/titular/pkg/style"
	"github.com/arthur-debert/titular/pkg/template"
	"github.com/arthur-debert/titular/pkg/transform"
)

var (
	verbosity    int
	templateName string
	setValues    []string
	widthPercent int
	skipNewline  bool
	withTime     bool

	rootCmd = &cobra.Command{
		Use:   "titular [flags] <text>...",
		Short: "Print styled section titles in the terminal",
		Long: `titular renders a line of text through a title template: colors are
applied, fill characters stretch to the terminal width, and the result is
printed ready to paste into logs, scripts or READMEs.`,
		Example: `  titular "Deploy finished"
  titular -t double "Phase 1" "of 3"
  titular -s f="~" -s main="NAME(red)" --width 50 "Warning"`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := renderTitle(args)
			if err != nil {
				style.ErrorPrinter.Println(err)
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVarP(&templateName, "template", "t", "", "Template to render with (default from config)")
	rootCmd.Flags().StringArrayVarP(&setValues, "set", "s", nil, "Override a variable or color, key=value (repeatable)")
	rootCmd.Flags().IntVar(&widthPercent, "width", 0, "Use this percentage of the terminal width (1-100)")
	rootCmd.Flags().BoolVar(&skipNewline, "skip-newline", false, "Do not append a trailing newline")
	rootCmd.Flags().BoolVar(&withTime, "with-time", false, "Append the current time to the title")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(versionCmd)
}

// renderTitle runs the full pipeline for the positional text.
func renderTitle(args []string) (string, error) {
	logger := logging.GetLogger("cmd")

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}

	name := templateName
	if name == "" {
		name = cfg.DefaultTemplate()
	}
	tmpl, err := config.FindTemplate(name)
	if err != nil {
		return "", err
	}
	logger.Debug().Str("template", name).Str("source", tmpl.Source).Msg("template resolved")

	overrides := parseOverrides(setValues)
	if len(args) > 0 {
		overrides["text"] = strings.Join(args, " ")
	}
	if skipNewline {
		overrides["skip-newline"] = "true"
	}
	if withTime {
		overrides["with-time"] = "true"
	}
	if widthPercent > 0 {
		overrides["width"] = fmt.Sprintf("%d", widthPercent)
	}
	cli := fallback.NewStatic("cli", overrides)

	ctx := fallback.NewMap(cli, tmpl.VarsProvider(), cfg.Provider())
	colorMap := fallback.NewMap(cli, tmpl.VarsProvider(), cfg.Colors())

	renderer := template.NewRenderer(ctx, colorMap)
	pipeline := transform.New(renderer, ctx, nil)
	return pipeline.Run(tmpl.Pattern)
}

// parseOverrides splits repeated key=value flags. A value may itself
// contain '='.
func parseOverrides(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			log.Warn().Str("value", pair).Msg("ignoring malformed --set, expected key=value")
			continue
		}
		out[key] = value
	}
	return out
}
