package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/titular/pkg/config"
	"github.com/arthur-debert/titular/pkg/style"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		templates, err := config.ListTemplates()
		if err != nil {
			style.ErrorPrinter.Println(err)
			return err
		}
		fmt.Println(style.RenderTemplateList(templates))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <template>",
	Short: "Show a template's pattern and variables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, err := config.FindTemplate(args[0])
		if err != nil {
			style.ErrorPrinter.Println(err)
			return err
		}
		fmt.Println(style.RenderTemplateDetails(tmpl))
		return nil
	},
}
