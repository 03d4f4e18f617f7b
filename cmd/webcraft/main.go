// Command webcraft is a terminal client for the webcraft server. It falls
// back to the built-in template engine whenever the server has no cloud
// backend or cannot be reached.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"webcraft/internal/client"
	"webcraft/internal/service/generator"
)

var (
	serverURL string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "webcraft",
	Short: "Chat with the webcraft code assistant",
	Long: `webcraft talks to a webcraft server and generates HTML, CSS, JavaScript
and React snippets. Without cloud credentials on the server, or without a
server at all, answers come from the local template engine.

Quick Start:
  webcraft chat -m "Create a contact form with validation"
  webcraft list
  webcraft preview <conversation-id> -o preview.html
  webcraft generate "pricing table for a SaaS called Nimbus"`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	defaultURL := os.Getenv("WEBCRAFT_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultURL, "webcraft server URL (env WEBCRAFT_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// newEngine builds the local template engine
func newEngine() (*generator.Engine, error) {
	catalog, err := generator.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("load template catalog: %w", err)
	}
	return generator.NewEngine(catalog), nil
}

// newClient creates an API client with the local engine as fallback
func newClient() (*client.Client, error) {
	engine, err := newEngine()
	if err != nil {
		return nil, err
	}
	return client.New(serverURL, engine, client.WithLogger(slog.Default())), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
