package infrastructure

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/vision-chat-api/internal/config"
	"jan-server/services/vision-chat-api/internal/infrastructure/gemini"
	"jan-server/services/vision-chat-api/internal/infrastructure/openaicompat"
)

func TestProvideAIProvider(t *testing.T) {
	p, err := ProvideAIProvider(&config.Config{AIProvider: config.ProviderGemini, GoogleAPIKey: "k"}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, gemini.ProviderName, p.Name())

	p, err = ProvideAIProvider(&config.Config{AIProvider: config.ProviderOpenAI, OpenAIAPIKey: "k"}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, openaicompat.ProviderName, p.Name())

	_, err = ProvideAIProvider(&config.Config{AIProvider: "other"}, zerolog.Nop())
	assert.Error(t, err)
}
