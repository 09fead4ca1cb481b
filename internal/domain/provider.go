package domain

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"jan-server/services/vision-chat-api/internal/config"
	"jan-server/services/vision-chat-api/internal/domain/analysis"
	"jan-server/services/vision-chat-api/internal/domain/completion"
	"jan-server/services/vision-chat-api/internal/domain/conversation"
	"jan-server/services/vision-chat-api/internal/domain/health"
)

// ProvideCompletionClient provides the completion client over the configured AI provider.
func ProvideCompletionClient(provider completion.Provider, log zerolog.Logger) *completion.Client {
	return completion.NewClient(provider, log)
}

// ProvideConversationService provides the chat orchestrator.
func ProvideConversationService(
	store conversation.Store,
	client *completion.Client,
	log zerolog.Logger,
) conversation.Service {
	return conversation.NewService(store, client, log)
}

// ProvideTextService provides the text analysis service.
func ProvideTextService(client *completion.Client, log zerolog.Logger) analysis.TextService {
	return analysis.NewTextService(client, log)
}

// ProvideImageService provides the image analysis service.
func ProvideImageService(client *completion.Client, cfg *config.Config, log zerolog.Logger) analysis.ImageService {
	return analysis.NewImageService(client, ProvideImageRules(cfg), log)
}

// ProvideImageRules provides the upload limits shared by the image route and service.
func ProvideImageRules(cfg *config.Config) analysis.ImageRules {
	return analysis.ImageRules{
		MaxFileSize:  cfg.MaxFileSize,
		AllowedTypes: cfg.AllowedImageTypes,
	}
}

// ProvideHealthService provides the health service.
func ProvideHealthService(client *completion.Client, cfg *config.Config, log zerolog.Logger) health.Service {
	return health.NewService(client, cfg.Version, cfg.AIRequestTimeout, log)
}

// ServiceProvider provides all domain services.
var ServiceProvider = wire.NewSet(
	ProvideCompletionClient,
	ProvideConversationService,
	ProvideTextService,
	ProvideImageService,
	ProvideImageRules,
	ProvideHealthService,
)
