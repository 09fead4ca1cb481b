package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"jan-server/services/vision-chat-api/internal/client"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vision-chat-cli",
	Short: "Command-line client for the vision-chat-api",
	Long: `vision-chat-cli talks to a running vision-chat-api server.

Examples:
  # Chat
  vision-chat-cli chat send "Hello there"
  vision-chat-cli chat send "And then?" --conversation conv_abc123
  vision-chat-cli chat list

  # Analysis
  vision-chat-cli analyze text "I love this product" --type sentiment
  vision-chat-cli analyze image ./photo.jpg

  # Health
  vision-chat-cli health`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(healthCmd)

	rootCmd.PersistentFlags().String("server", envOr("VISION_CHAT_API_URL", "http://localhost:8000"), "Server base URL")
	rootCmd.PersistentFlags().String("prefix", client.DefaultPrefix, "API route prefix")
	rootCmd.PersistentFlags().Duration("timeout", 90*time.Second, "Request timeout")
}

func newClient(cmd *cobra.Command) *client.Client {
	server, _ := cmd.Flags().GetString("server")
	prefix, _ := cmd.Flags().GetString("prefix")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return client.New(client.Options{BaseURL: server, Prefix: prefix, Timeout: timeout})
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
