package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"webcraft/internal/client"
)

var (
	chatMessage string
	chatTitle   string
)

var chatCmd = &cobra.Command{
	Use:   "chat [conversation-id]",
	Short: "Send messages to a conversation",
	Long: `Send one message with -m, or start an interactive session reading one
message per line from stdin. Without a conversation id a new conversation
is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		var id string
		if len(args) == 1 {
			id = args[0]
		} else {
			conv, err := c.CreateConversation(ctx, chatTitle)
			if err != nil {
				return fmt.Errorf("create conversation: %w", err)
			}
			id = conv.ID
			fmt.Fprintln(out, noteStyle.Render("conversation "+id))
		}

		if chatMessage != "" {
			return sendAndPrint(ctx, c, id, chatMessage, out)
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		fmt.Fprint(out, userStyle.Render("you> "))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				if err := sendAndPrint(ctx, c, id, line, out); err != nil {
					return err
				}
			}
			fmt.Fprint(out, userStyle.Render("you> "))
		}
		fmt.Fprintln(out)
		return scanner.Err()
	},
}

// sendAndPrint streams one turn to out, printing only newly revealed text
func sendAndPrint(ctx context.Context, c *client.Client, id, message string, out io.Writer) error {
	fmt.Fprintln(out, assistantStyle.Render("assistant>"))

	printed := 0
	onUpdate := func(text string) {
		if len(text) <= printed {
			return
		}
		fmt.Fprint(out, text[printed:])
		printed = len(text)
	}

	result, err := c.Send(ctx, id, message, onUpdate)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)

	if result.Source == client.SourceLocal {
		fmt.Fprintln(out, noteStyle.Render("(local engine: "+result.TemplateID+")"))
	}
	if result.Conversation != nil && result.Conversation.ProjectSummary != nil {
		fmt.Fprintln(out, dateStyle.Render(*result.Conversation.ProjectSummary))
	}
	return nil
}

func init() {
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Send a single message and exit")
	chatCmd.Flags().StringVar(&chatTitle, "title", "", "Title for a new conversation")
	rootCmd.AddCommand(chatCmd)
}
