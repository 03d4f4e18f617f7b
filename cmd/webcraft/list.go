package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"webcraft/internal/domain/models/chat"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		convs, err := c.ListConversations(cmd.Context())
		if err != nil {
			return fmt.Errorf("list conversations: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(convs) == 0 {
			fmt.Fprintln(out, "No conversations yet.")
			return nil
		}

		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d conversations", len(convs))))
		for _, conv := range convs {
			fmt.Fprintln(out, formatConversation(conv))
		}
		return nil
	},
}

func formatConversation(conv chat.Conversation) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(conv.Title))
	b.WriteString("  ")
	b.WriteString(idStyle.Render(conv.ID))
	b.WriteString("  ")
	b.WriteString(dateStyle.Render(conv.UpdatedAt.Local().Format("2006-01-02 15:04")))
	if conv.ProjectSummary != nil && *conv.ProjectSummary != "" {
		b.WriteString("\n    ")
		b.WriteString(*conv.ProjectSummary)
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(listCmd)
}
