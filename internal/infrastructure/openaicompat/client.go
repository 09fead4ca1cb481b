package openaicompat

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"jan-server/services/vision-chat-api/internal/domain/completion"
	"jan-server/services/vision-chat-api/internal/infrastructure/metrics"
	"jan-server/services/vision-chat-api/internal/infrastructure/observability"
)

// ProviderName identifies this provider in logs, metrics and health reports.
const ProviderName = "openai"

// Options configures the OpenAI-compatible client.
type Options struct {
	APIKey      string
	BaseURL     string
	TextModel   string
	VisionModel string
	Timeout     time.Duration
}

// Client implements completion.Provider against any OpenAI-compatible chat completions API.
type Client struct {
	api         *openai.Client
	textModel   string
	visionModel string
	log         zerolog.Logger
}

// ErrNoChoices is returned when the API answers without any choice.
var ErrNoChoices = errors.New("openai returned no choices")

// NewClient creates a go-openai backed client.
func NewClient(opts Options, log zerolog.Logger) *Client {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}

	return &Client{
		api:         openai.NewClientWithConfig(cfg),
		textModel:   opts.TextModel,
		visionModel: opts.VisionModel,
		log:         log.With().Str("component", "openai-client").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Generate produces text for a text-only prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, "generate", c.textModel, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})
}

// GenerateWithImage produces text for a prompt over an image sent as a data URL.
func (c *Client) GenerateWithImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	return c.complete(ctx, "generate_with_image", c.visionModel, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: prompt},
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{
				URL:    dataURL,
				Detail: openai.ImageURLDetailAuto,
			}},
		},
	})
}

func (c *Client) complete(ctx context.Context, operation, model string, msg openai.ChatCompletionMessage) (text string, err error) {
	ctx, span := observability.StartProviderSpan(ctx, ProviderName, operation, model)
	start := time.Now()
	defer func() {
		observability.RecordError(span, err)
		span.End()
		metrics.RecordProviderCall(ProviderName, operation, err, time.Since(start))
	}()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: []openai.ChatCompletionMessage{msg},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			c.log.Warn().Int("status", apiErr.HTTPStatusCode).Str("model", model).Msg("openai returned an error")
			return "", fmt.Errorf("openai api error: %d %s", apiErr.HTTPStatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("openai request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// Ensure interface compliance.
var _ completion.Provider = (*Client)(nil)
