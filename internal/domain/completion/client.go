package completion

import (
	"context"
	"errors"
	"net"

	"github.com/rs/zerolog"

	"jan-server/services/vision-chat-api/internal/utils/platformerrors"
)

// ErrEmptyResponse is returned when a provider answers without any text.
var ErrEmptyResponse = errors.New("empty response from AI provider")

// Client is the single integration point with the configured AI provider. It owns
// the prompt templates and the best-effort decoding of provider output.
//
// Text operations return an EXTERNAL platform error on provider failure, or
// TIMEOUT when the provider call ran out of time.
// AnalyzeImage instead degrades to a fallback analysis.
type Client struct {
	provider Provider
	log      zerolog.Logger
}

// NewClient creates a completion client on top of a provider.
func NewClient(provider Provider, log zerolog.Logger) *Client {
	return &Client{
		provider: provider,
		log:      log.With().Str("component", "completion-client").Str("provider", provider.Name()).Logger(),
	}
}

// ProviderName returns the name of the underlying provider.
func (c *Client) ProviderName() string {
	return c.provider.Name()
}

// TestConnection issues a trivial request and reports whether it succeeded. It never fails.
func (c *Client) TestConnection(ctx context.Context) bool {
	if _, err := c.provider.Generate(ctx, connectionTestPrompt); err != nil {
		c.log.Error().Err(err).Msg("AI provider connection test failed")
		return false
	}
	return true
}

// TextCompletion is a single-shot text generation.
func (c *Client) TextCompletion(ctx context.Context, prompt string) (string, error) {
	text, err := c.provider.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// VisionCompletion is a multimodal generation over raw image bytes.
func (c *Client) VisionCompletion(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	text, err := c.provider.GenerateWithImage(ctx, image, mimeType, prompt)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// ChatCompletion answers a chat message given the rendered conversation context.
func (c *Client) ChatCompletion(ctx context.Context, message, history string) (string, error) {
	text, err := c.TextCompletion(ctx, chatPrompt(message, history))
	if err != nil {
		return "", c.serviceError(ctx, err, "Chat response failed")
	}
	return text, nil
}

// AnalyzeSentiment asks for a sentiment breakdown of text.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (map[string]any, error) {
	return c.structuredText(ctx, sentimentPrompt(text), "Sentiment analysis failed")
}

// SummarizeText asks for a summary of text.
func (c *Client) SummarizeText(ctx context.Context, text string) (map[string]any, error) {
	return c.structuredText(ctx, summaryPrompt(text), "Text summarization failed")
}

// AnalyzeTextComprehensive asks for a full analysis of text.
func (c *Client) AnalyzeTextComprehensive(ctx context.Context, text string) (map[string]any, error) {
	return c.structuredText(ctx, comprehensivePrompt(text), "Text analysis failed")
}

// AnalyzeImage asks for a structured description of an image. On provider failure
// the returned analysis is FallbackImageAnalysis and err describes the failure;
// the analysis is never nil.
func (c *Client) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (map[string]any, error) {
	text, err := c.VisionCompletion(ctx, image, mimeType, imageAnalysisPrompt)
	if err != nil {
		c.log.Error().Err(err).Str("mime_type", mimeType).Int("bytes", len(image)).Msg("image analysis failed")
		return FallbackImageAnalysis(err), err
	}
	return ExtractStructuredResult(text), nil
}

// FallbackImageAnalysis is the analysis reported when the provider could not analyze an image.
func FallbackImageAnalysis(cause error) map[string]any {
	return map[string]any{
		"description":   "Analysis failed: " + cause.Error(),
		"objects":       []string{},
		"colors":        []string{},
		"text_detected": "",
		"mood":          "unknown",
		"composition":   "",
		"suggestions":   "Please try again",
		"confidence":    0.0,
		"error":         cause.Error(),
	}
}

func (c *Client) structuredText(ctx context.Context, prompt, failure string) (map[string]any, error) {
	text, err := c.TextCompletion(ctx, prompt)
	if err != nil {
		return nil, c.serviceError(ctx, err, failure)
	}
	return ExtractStructuredResult(text), nil
}

func (c *Client) serviceError(ctx context.Context, err error, failure string) error {
	c.log.Error().Err(err).Msg(failure)
	errorType := platformerrors.ErrorTypeExternal
	if isTimeout(err) {
		errorType = platformerrors.ErrorTypeTimeout
	}
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, errorType,
		failure+": "+err.Error(), err, map[string]any{"provider": c.provider.Name()})
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
