// Package client is a typed HTTP client for the vision-chat-api.
package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/requests"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/responses"
)

// DefaultPrefix is the route prefix the server mounts its API under.
const DefaultPrefix = "/api/v1"

// APIError is a non-2xx reply decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Type       string
	Code       string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("vision-chat-api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("vision-chat-api: %d %s: %s", e.StatusCode, e.Type, e.Message)
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Prefix  string
	Timeout time.Duration
}

// Client calls the chat, analysis and health endpoints.
type Client struct {
	http *resty.Client
}

// New creates a Client for the server at opts.BaseURL.
func New(opts Options) *Client {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(opts.BaseURL, "/") + "/" + strings.Trim(prefix, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// SendMessage posts a chat message. An empty conversationID starts a new conversation.
func (c *Client) SendMessage(ctx context.Context, req requests.ChatMessageRequest) (*responses.ChatMessageResponse, error) {
	var out responses.ChatMessageResponse
	if err := c.do(ctx, http.MethodPost, "/chat/message", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListConversations returns conversation summaries, most recent first.
func (c *Client) ListConversations(ctx context.Context) ([]responses.ConversationSummaryResponse, error) {
	out := []responses.ConversationSummaryResponse{}
	if err := c.do(ctx, http.MethodGet, "/chat/conversations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetConversation fetches one conversation with all its turns.
func (c *Client) GetConversation(ctx context.Context, id string) (*responses.ConversationResponse, error) {
	var out responses.ConversationResponse
	if err := c.do(ctx, http.MethodGet, "/chat/conversations/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConversation removes a conversation.
func (c *Client) DeleteConversation(ctx context.Context, id string) (*responses.DeleteConversationResponse, error) {
	var out responses.DeleteConversationResponse
	if err := c.do(ctx, http.MethodDelete, "/chat/conversations/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats returns the conversation store counters.
func (c *Client) Stats(ctx context.Context) (*responses.StatsResponse, error) {
	var out responses.StatsResponse
	if err := c.do(ctx, http.MethodGet, "/chat/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeText runs a text analysis.
func (c *Client) AnalyzeText(ctx context.Context, req requests.TextAnalysisRequest) (*responses.TextAnalysisResponse, error) {
	var out responses.TextAnalysisResponse
	if err := c.do(ctx, http.MethodPost, "/text/analyze", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeImageFile uploads the image at path for analysis.
func (c *Client) AnalyzeImageFile(ctx context.Context, path string) (*responses.ImageAnalysisResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return c.AnalyzeImage(ctx, filepath.Base(path), data)
}

// AnalyzeImage uploads image bytes as a multipart "file" field.
func (c *Client) AnalyzeImage(ctx context.Context, filename string, data []byte) (*responses.ImageAnalysisResponse, error) {
	var out responses.ImageAnalysisResponse
	var apiErr responses.ErrorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(data)).
		SetResult(&out).
		SetError(&apiErr).
		Post("/images/analyze")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, toAPIError(resp, &apiErr)
	}
	return &out, nil
}

// Health reports the server's provider connectivity.
func (c *Client) Health(ctx context.Context) (*responses.HealthResponse, error) {
	var out responses.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var apiErr responses.ErrorResponse
	req := c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&apiErr)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return toAPIError(resp, &apiErr)
	}
	return nil
}

func toAPIError(resp *resty.Response, body *responses.ErrorResponse) error {
	out := &APIError{StatusCode: resp.StatusCode()}
	if body.Error != nil {
		out.Message = body.Error.Message
		out.Type = body.Error.Type
		out.Code = body.Error.Code
		out.RequestID = body.Error.RequestID
	}
	if out.Message == "" {
		out.Message = strings.TrimSpace(resp.String())
	}
	return out
}
