package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/requests"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat operations",
	Long:  `Send messages and manage conversations.`,
}

var chatSendCmd = &cobra.Command{
	Use:   "send [message]",
	Short: "Send a chat message",
	Long:  `Send a message, starting a new conversation unless --conversation is given.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChatSend,
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations",
	RunE:  runChatList,
}

var chatShowCmd = &cobra.Command{
	Use:   "show [conversation-id]",
	Short: "Show a conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runChatShow,
}

var chatDeleteCmd = &cobra.Command{
	Use:   "delete [conversation-id]",
	Short: "Delete a conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runChatDelete,
}

var chatStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show conversation store statistics",
	RunE:  runChatStats,
}

func init() {
	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatListCmd)
	chatCmd.AddCommand(chatShowCmd)
	chatCmd.AddCommand(chatDeleteCmd)
	chatCmd.AddCommand(chatStatsCmd)

	chatSendCmd.Flags().StringP("conversation", "c", "", "Conversation ID to continue")
	chatSendCmd.Flags().String("context", "", "Additional context for the reply")
	chatSendCmd.Flags().Bool("json", false, "Print the full JSON reply")
}

func runChatSend(cmd *cobra.Command, args []string) error {
	conversationID, _ := cmd.Flags().GetString("conversation")
	extra, _ := cmd.Flags().GetString("context")
	asJSON, _ := cmd.Flags().GetBool("json")

	resp, err := newClient(cmd).SendMessage(cmd.Context(), requests.ChatMessageRequest{
		Message:        strings.Join(args, " "),
		Context:        extra,
		ConversationID: conversationID,
	})
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, resp.Response)
	fmt.Fprintf(out, "\n(conversation %s)\n", resp.ConversationID)
	return nil
}

func runChatList(cmd *cobra.Command, args []string) error {
	list, err := newClient(cmd).ListConversations(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No conversations.")
		return nil
	}
	for _, s := range list {
		fmt.Fprintf(out, "  %-32s %3d  %s  %s\n", s.ID, s.TurnCount, s.LastActivity.Format("2006-01-02 15:04:05"), s.Preview)
	}
	return nil
}

func runChatShow(cmd *cobra.Command, args []string) error {
	conv, err := newClient(cmd).GetConversation(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), conv)
}

func runChatDelete(cmd *cobra.Command, args []string) error {
	resp, err := newClient(cmd).DeleteConversation(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
	return nil
}

func runChatStats(cmd *cobra.Command, args []string) error {
	stats, err := newClient(cmd).Stats(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), stats)
}
