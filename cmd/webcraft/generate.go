package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	generateCodeOnly bool
	generateJSON     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Run the local template engine without a server",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		result := engine.Generate(strings.Join(args, " "))
		out := cmd.OutOrStdout()

		switch {
		case generateJSON:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		case generateCodeOnly:
			fmt.Fprintln(out, result.Code)
		default:
			fmt.Fprintln(out, noteStyle.Render(fmt.Sprintf("template %s (score %d)", result.TemplateID, result.Score)))
			fmt.Fprintln(out, result.Response)
		}
		return nil
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the local template catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, t := range engine.Templates() {
			fmt.Fprintf(out, "%s  %s\n    %s\n", titleStyle.Render(t.ID), t.Name, dateStyle.Render(strings.Join(t.Keywords, ", ")))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateCodeOnly, "code", false, "Print only the generated code")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the full result as JSON")
	rootCmd.AddCommand(generateCmd, templatesCmd)
}
