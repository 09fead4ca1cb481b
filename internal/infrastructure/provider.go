package infrastructure

import (
	"fmt"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"jan-server/services/vision-chat-api/internal/config"
	"jan-server/services/vision-chat-api/internal/domain/completion"
	"jan-server/services/vision-chat-api/internal/domain/conversation"
	"jan-server/services/vision-chat-api/internal/infrastructure/gemini"
	"jan-server/services/vision-chat-api/internal/infrastructure/openaicompat"
	"jan-server/services/vision-chat-api/internal/infrastructure/store"
)

// ProvideAIProvider provides the completion provider selected by AI_PROVIDER.
func ProvideAIProvider(cfg *config.Config, log zerolog.Logger) (completion.Provider, error) {
	switch cfg.AIProvider {
	case config.ProviderGemini:
		return gemini.NewClient(gemini.Options{
			APIKey:      cfg.GoogleAPIKey,
			BaseURL:     cfg.GeminiBaseURL,
			TextModel:   cfg.GeminiTextModel,
			VisionModel: cfg.GeminiVisionModel,
			Timeout:     cfg.AIRequestTimeout,
		}, log), nil
	case config.ProviderOpenAI:
		return openaicompat.NewClient(openaicompat.Options{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			TextModel:   cfg.OpenAITextModel,
			VisionModel: cfg.OpenAIVisionModel,
			Timeout:     cfg.AIRequestTimeout,
		}, log), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.AIProvider)
	}
}

// ProvideConversationStore provides the process-wide conversation store.
func ProvideConversationStore(log zerolog.Logger) conversation.Store {
	return store.NewMemoryStore(log)
}

// ProvideStoreReporter provides the store stats reporter.
func ProvideStoreReporter(conversations conversation.Store, cfg *config.Config, log zerolog.Logger) *store.Reporter {
	return store.NewReporter(conversations, cfg.StoreReportInterval, log)
}

// InfrastructureProvider provides all infrastructure dependencies.
var InfrastructureProvider = wire.NewSet(
	ProvideAIProvider,
	ProvideConversationStore,
	ProvideStoreReporter,
)
