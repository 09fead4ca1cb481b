package handlers

import (
	"github.com/google/wire"

	"jan-server/services/vision-chat-api/internal/domain/analysis"
	"jan-server/services/vision-chat-api/internal/domain/conversation"
	"jan-server/services/vision-chat-api/internal/domain/health"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Chat     *ChatHandler
	Analysis *AnalysisHandler
	Health   *HealthHandler
}

// NewProvider creates a new handler provider.
func NewProvider(chat *ChatHandler, analysisHandler *AnalysisHandler, healthHandler *HealthHandler) *Provider {
	return &Provider{
		Chat:     chat,
		Analysis: analysisHandler,
		Health:   healthHandler,
	}
}

// NewProviderFromServices builds every handler from the domain services.
func NewProviderFromServices(
	conversations conversation.Service,
	text analysis.TextService,
	image analysis.ImageService,
	rules analysis.ImageRules,
	healthService health.Service,
) *Provider {
	return NewProvider(
		NewChatHandler(conversations),
		NewAnalysisHandler(text, image, rules),
		NewHealthHandler(healthService),
	)
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewChatHandler,
	NewAnalysisHandler,
	NewHealthHandler,
	NewProvider,
)
