package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"prettylog/internal/pretty"
	"prettylog/internal/severity"
	"prettylog/internal/term"
)

func newStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Show the severity style table",
		RunE: func(cmd *cobra.Command, args []string) error {
			decorate := term.IsTerminal(os.Stdout)
			fmt.Fprintln(cmd.OutOrStdout(), renderStyleTable(decorate))
			return nil
		},
	}
}

func renderStyleTable(decorate bool) string {
	formatter := pretty.NewFormatter(pretty.Config{
		UseColor: decorate,
		UseEmoji: decorate,
	}, term.Probe())

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Severity", "Color", "Emoji", "Sample"})
	for _, level := range severity.Levels() {
		style := severity.StyleFor(level)
		tw.AppendRow(table.Row{
			style.Label,
			string(style.Color),
			style.Emoji,
			formatter.Format(pretty.Record{Level: level, Message: "The quick brown fox"}),
		})
	}
	return tw.Render()
}
