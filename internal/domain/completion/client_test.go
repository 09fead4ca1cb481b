package completion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/vision-chat-api/internal/utils/platformerrors"
)

type mockProvider struct {
	GenerateFunc          func(ctx context.Context, prompt string) (string, error)
	GenerateWithImageFunc func(ctx context.Context, image []byte, mimeType, prompt string) (string, error)
	prompts               []string
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", nil
}

func (m *mockProvider) GenerateWithImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.GenerateWithImageFunc != nil {
		return m.GenerateWithImageFunc(ctx, image, mimeType, prompt)
	}
	return "", nil
}

func reply(text string, err error) func(context.Context, string) (string, error) {
	return func(context.Context, string) (string, error) { return text, err }
}

func TestTestConnection(t *testing.T) {
	ok := NewClient(&mockProvider{GenerateFunc: reply("hello", nil)}, zerolog.Nop())
	assert.True(t, ok.TestConnection(context.Background()))

	down := NewClient(&mockProvider{GenerateFunc: reply("", errors.New("unavailable"))}, zerolog.Nop())
	assert.False(t, down.TestConnection(context.Background()))
}

func TestChatCompletion_PromptLayout(t *testing.T) {
	provider := &mockProvider{GenerateFunc: reply("Hi there!", nil)}
	client := NewClient(provider, zerolog.Nop())

	got, err := client.ChatCompletion(context.Background(), "hello", "User: earlier\nAI: reply")
	require.NoError(t, err)
	assert.Equal(t, "Hi there!", got)

	require.Len(t, provider.prompts, 1)
	prompt := provider.prompts[0]
	assert.Contains(t, prompt, "Context: User: earlier\nAI: reply\n\nUser message: hello")

	_, err = client.ChatCompletion(context.Background(), "hello", "")
	require.NoError(t, err)
	assert.NotContains(t, provider.prompts[1], "Context:")
	assert.Contains(t, provider.prompts[1], "User message: hello")
}

func TestChatCompletion_ProviderFailure(t *testing.T) {
	client := NewClient(&mockProvider{GenerateFunc: reply("", errors.New("quota exceeded"))}, zerolog.Nop())

	_, err := client.ChatCompletion(context.Background(), "hello", "")
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestChatCompletion_TimeoutIsTimeoutError(t *testing.T) {
	client := NewClient(&mockProvider{GenerateFunc: reply("", fmt.Errorf("generate: %w", context.DeadlineExceeded))}, zerolog.Nop())

	_, err := client.ChatCompletion(context.Background(), "hello", "")
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeTimeout))
}

func TestChatCompletion_EmptyReply(t *testing.T) {
	client := NewClient(&mockProvider{GenerateFunc: reply("", nil)}, zerolog.Nop())

	_, err := client.ChatCompletion(context.Background(), "hello", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestTextAnalyses(t *testing.T) {
	client := NewClient(&mockProvider{GenerateFunc: reply(`Sure! {"summary": "short"}`, nil)}, zerolog.Nop())
	ctx := context.Background()

	for name, analyze := range map[string]func(context.Context, string) (map[string]any, error){
		"sentiment":     client.AnalyzeSentiment,
		"summary":       client.SummarizeText,
		"comprehensive": client.AnalyzeTextComprehensive,
	} {
		t.Run(name, func(t *testing.T) {
			got, err := analyze(ctx, "some text")
			require.NoError(t, err)
			assert.Equal(t, "short", got["summary"])
		})
	}
}

func TestTextAnalyses_FailurePropagates(t *testing.T) {
	client := NewClient(&mockProvider{GenerateFunc: reply("", errors.New("timeout"))}, zerolog.Nop())

	got, err := client.AnalyzeSentiment(context.Background(), "text")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
	assert.Contains(t, err.Error(), "Sentiment analysis failed")
}

func TestTextAnalyses_UnparseableReplyIsNotAnError(t *testing.T) {
	client := NewClient(&mockProvider{GenerateFunc: reply("I cannot do that", nil)}, zerolog.Nop())

	got, err := client.SummarizeText(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, false, got["parsed"])
	assert.Equal(t, ErrNoJSONStructure, got["error"])
}

func TestSummaryPromptIncludesWordCount(t *testing.T) {
	provider := &mockProvider{GenerateFunc: reply("{}", nil)}
	client := NewClient(provider, zerolog.Nop())

	_, err := client.SummarizeText(context.Background(), "one two three")
	require.NoError(t, err)
	assert.Contains(t, provider.prompts[0], `"word_count_original": 3`)
}

func TestTextPromptsEmbedRawText(t *testing.T) {
	text := "line one\nhe said \"hi\""
	provider := &mockProvider{GenerateFunc: reply("{}", nil)}
	client := NewClient(provider, zerolog.Nop())
	ctx := context.Background()

	_, err := client.AnalyzeSentiment(ctx, text)
	require.NoError(t, err)
	_, err = client.SummarizeText(ctx, text)
	require.NoError(t, err)
	_, err = client.AnalyzeTextComprehensive(ctx, text)
	require.NoError(t, err)

	require.Len(t, provider.prompts, 3)
	for _, prompt := range provider.prompts {
		assert.Contains(t, prompt, "Text: \"line one\nhe said \"hi\"\"")
		assert.NotContains(t, prompt, `\n`)
	}
}

func TestAnalyzeImage(t *testing.T) {
	provider := &mockProvider{
		GenerateWithImageFunc: func(_ context.Context, image []byte, mimeType, _ string) (string, error) {
			assert.Equal(t, []byte{0xff, 0xd8}, image)
			assert.Equal(t, "image/jpeg", mimeType)
			return `{"description": "a cat", "confidence": 0.9}`, nil
		},
	}
	client := NewClient(provider, zerolog.Nop())

	got, err := client.AnalyzeImage(context.Background(), []byte{0xff, 0xd8}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "a cat", got["description"])
}

func TestAnalyzeImage_FailureDegrades(t *testing.T) {
	provider := &mockProvider{
		GenerateWithImageFunc: func(context.Context, []byte, string, string) (string, error) {
			return "", errors.New("vision model unavailable")
		},
	}
	client := NewClient(provider, zerolog.Nop())

	got, err := client.AnalyzeImage(context.Background(), []byte{1}, "image/png")
	require.Error(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0.0, got["confidence"])
	assert.Equal(t, "vision model unavailable", got["error"])
	assert.Equal(t, "unknown", got["mood"])
	for _, key := range []string{"description", "objects", "colors", "text_detected", "composition", "suggestions"} {
		assert.Contains(t, got, key)
	}
}
