package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"jan-server/services/vision-chat-api/internal/domain/completion"
	"jan-server/services/vision-chat-api/internal/infrastructure/metrics"
	"jan-server/services/vision-chat-api/internal/infrastructure/observability"
)

// ProviderName identifies this provider in logs, metrics and health reports.
const ProviderName = "gemini"

const generatePath = "/v1beta/models/{model}:generateContent"

// Options configures the Gemini client.
type Options struct {
	APIKey      string
	BaseURL     string
	TextModel   string
	VisionModel string
	Timeout     time.Duration
}

// Client implements completion.Provider against the Gemini generateContent REST API.
type Client struct {
	httpClient  *resty.Client
	textModel   string
	visionModel string
	log         zerolog.Logger
}

// NewClient creates a Resty-backed Gemini client.
func NewClient(opts Options, log zerolog.Logger) *Client {
	return &Client{
		httpClient: resty.New().
			SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
			SetHeader("Content-Type", "application/json").
			SetHeader("x-goog-api-key", opts.APIKey).
			SetTimeout(opts.Timeout),
		textModel:   opts.TextModel,
		visionModel: opts.VisionModel,
		log:         log.With().Str("component", "gemini-client").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Generate produces text for a text-only prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, "generate", c.textModel, []part{{Text: prompt}})
}

// GenerateWithImage produces text for a prompt over an inline image.
func (c *Client) GenerateWithImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	parts := []part{
		{Text: prompt},
		{InlineData: &blob{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
	}
	return c.generate(ctx, "generate_with_image", c.visionModel, parts)
}

func (c *Client) generate(ctx context.Context, operation, model string, parts []part) (text string, err error) {
	ctx, span := observability.StartProviderSpan(ctx, ProviderName, operation, model)
	start := time.Now()
	defer func() {
		observability.RecordError(span, err)
		span.End()
		metrics.RecordProviderCall(ProviderName, operation, err, time.Since(start))
	}()

	var (
		result generateResponse
		apiErr errorResponse
	)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("model", model).
		SetBody(generateRequest{Contents: []content{{Role: "user", Parts: parts}}}).
		SetResult(&result).
		SetError(&apiErr).
		Post(generatePath)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}

	if resp.IsError() {
		c.log.Warn().Int("status", resp.StatusCode()).Str("model", model).Msg("gemini returned an error")
		if apiErr.Error.Message != "" {
			return "", fmt.Errorf("gemini api error: %d %s", resp.StatusCode(), apiErr.Error.Message)
		}
		return "", fmt.Errorf("gemini api error: %d %s", resp.StatusCode(), resp.String())
	}

	return result.text()
}

// Ensure interface compliance.
var _ completion.Provider = (*Client)(nil)

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string `json:"text,omitempty"`
	InlineData *blob  `json:"inlineData,omitempty"`
}

type blob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates     []candidate     `json:"candidates"`
	PromptFeedback *promptFeedback `json:"promptFeedback,omitempty"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// ErrNoCandidates is returned when Gemini answers without any candidate.
var ErrNoCandidates = errors.New("gemini returned no candidates")

// text concatenates the text parts of the first candidate.
func (r *generateResponse) text() (string, error) {
	if r.PromptFeedback != nil && r.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("gemini blocked the prompt: %s", r.PromptFeedback.BlockReason)
	}
	if len(r.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}
