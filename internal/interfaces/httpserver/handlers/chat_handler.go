package handlers

import (
	"context"

	"jan-server/services/vision-chat-api/internal/domain/conversation"
	"jan-server/services/vision-chat-api/internal/infrastructure/metrics"
)

// ChatHandler handles chat and conversation HTTP requests.
type ChatHandler struct {
	service conversation.Service
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(service conversation.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

// SendMessage answers a chat message and records the outcome.
func (h *ChatHandler) SendMessage(ctx context.Context, req conversation.MessageRequest) (*conversation.MessageResponse, error) {
	resp, err := h.service.ProcessMessage(ctx, req)
	if err != nil {
		metrics.RecordChatMessage("error")
		return nil, err
	}
	metrics.RecordChatMessage("success")
	return resp, nil
}

// GetConversation retrieves a conversation by ID.
func (h *ChatHandler) GetConversation(ctx context.Context, id string) (*conversation.Conversation, error) {
	return h.service.GetConversation(ctx, id)
}

// ListConversations lists conversation summaries, most recent first.
func (h *ChatHandler) ListConversations(ctx context.Context) ([]conversation.Summary, error) {
	return h.service.ListConversations(ctx)
}

// DeleteConversation removes a conversation.
func (h *ChatHandler) DeleteConversation(ctx context.Context, id string) error {
	if err := h.service.DeleteConversation(ctx, id); err != nil {
		return err
	}
	metrics.RecordConversationDeleted()
	return nil
}

// Stats returns conversation store counters.
func (h *ChatHandler) Stats(ctx context.Context) (conversation.Stats, error) {
	return h.service.Stats(ctx)
}
