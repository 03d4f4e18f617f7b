package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var previewOutput string

var previewCmd = &cobra.Command{
	Use:   "preview <conversation-id>",
	Short: "Download the combined HTML preview of a conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		doc, err := c.Preview(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}

		if previewOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		}
		if err := os.WriteFile(previewOutput, []byte(doc), 0644); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), noteStyle.Render("preview written to "+previewOutput))
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "Write the document to a file instead of stdout")
	rootCmd.AddCommand(previewCmd)
}
