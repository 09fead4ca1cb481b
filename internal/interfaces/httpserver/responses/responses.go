// Package responses contains HTTP response DTOs for the vision-chat-api.
package responses

import (
	"jan-server/services/vision-chat-api/internal/domain/analysis"
	"jan-server/services/vision-chat-api/internal/domain/conversation"
	"jan-server/services/vision-chat-api/internal/domain/health"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ChatMessageResponse is the reply to a chat message.
type ChatMessageResponse = conversation.MessageResponse

// ConversationResponse is a full conversation with its turns.
type ConversationResponse = conversation.Conversation

// ConversationSummaryResponse is one entry of the conversation list.
type ConversationSummaryResponse = conversation.Summary

// StatsResponse reports conversation store counters.
type StatsResponse = conversation.Stats

// ImageAnalysisResponse is the outcome of an image analysis.
type ImageAnalysisResponse = analysis.ImageResult

// TextAnalysisResponse is the outcome of a text analysis.
type TextAnalysisResponse = analysis.TextResult

// HealthResponse reports provider connectivity.
type HealthResponse = health.Report

// DeleteConversationResponse confirms a deletion.
type DeleteConversationResponse struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

// NewDeleteConversationResponse builds the deletion confirmation.
func NewDeleteConversationResponse(id string) DeleteConversationResponse {
	return DeleteConversationResponse{
		Message:        "Conversation deleted successfully",
		ConversationID: id,
	}
}

// IndexResponse describes the API and its endpoints.
type IndexResponse struct {
	Message     string            `json:"message"`
	Version     string            `json:"version"`
	DocsURL     string            `json:"docs_url"`
	HealthCheck string            `json:"health_check"`
	Endpoints   map[string]string `json:"endpoints"`
}
