package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/requests"
)

func TestSendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/chat/message", r.URL.Path)

		var body requests.ChatMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hi", body.Message)
		assert.Equal(t, "conv_1", body.ConversationID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"hello","conversation_id":"conv_1","timestamp":"2024-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	resp, err := c.SendMessage(context.Background(), requests.ChatMessageRequest{Message: "hi", ConversationID: "conv_1"})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Response)
	assert.Equal(t, "conv_1", resp.ConversationID)
}

func TestErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"Conversation not found","type":"NOT_FOUND","request_id":"req-1"}}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	_, err := c.GetConversation(context.Background(), "missing")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Conversation not found", apiErr.Message)
	assert.Equal(t, "NOT_FOUND", apiErr.Type)
	assert.Equal(t, "req-1", apiErr.RequestID)
}

func TestListConversations_CustomPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/chat/conversations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"conversation_id":"conv_b","message_count":2,"preview":"hi"}]`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL + "/", Prefix: "/v2/"})
	list, err := c.ListConversations(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "conv_b", list[0].ID)
	assert.Equal(t, 2, list[0].TurnCount)
}

func TestAnalyzeImage_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/images/analyze", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "cat.png", header.Filename)
		assert.Equal(t, []byte("pixels"), data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"filename":"cat.png","analysis":{"description":"a cat"},"processing_time":"0.10s","file_size":6}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	resp, err := c.AnalyzeImage(context.Background(), "cat.png", []byte("pixels"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "a cat", resp.Analysis["description"])
	assert.EqualValues(t, 6, resp.FileSize)
}

func TestAnalyzeImageFile_Missing(t *testing.T) {
	c := New(Options{BaseURL: "http://127.0.0.1:0"})
	_, err := c.AnalyzeImageFile(context.Background(), "/does/not/exist.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read image")
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","provider":"gemini","provider_status":"connected","version":"1.0.0"}`))
	}))
	defer srv.Close()

	report, err := New(Options{BaseURL: srv.URL}).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", report.Status)
}
