package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/titular/pkg/docs"
	"github.com/arthur-debert/titular/pkg/style"
	"github.com/arthur-debert/titular/pkg/terminal"
)

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Read the built-in guides",
	Long:  `Without arguments, lists the available topics. With a topic name, renders that guide in the terminal.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			topics, err := docs.List()
			if err != nil {
				return err
			}
			fmt.Println(style.TitleStyle.Render("Available topics"))
			for _, topic := range topics {
				fmt.Println(style.Indent(topic.Name, 1))
			}
			fmt.Println()
			fmt.Println(style.MutedStyle.Render("Use 'titular docs <topic>' to read a guide."))
			return nil
		}

		topic, err := docs.Get(args[0])
		if err != nil {
			style.ErrorPrinter.Println(err)
			return err
		}
		fmt.Print(docs.Render(topic, terminal.Width()))
		return nil
	},
}
