package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestChatSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chat/message", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"Hi!","conversation_id":"conv_x","timestamp":"2024-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	out, err := execute(t, "chat", "send", "hello", "there", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Hi!")
	assert.Contains(t, out, "(conversation conv_x)")
}

func TestChatList_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	out, err := execute(t, "chat", "list", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "No conversations.")
}

func TestHealth_Unhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"unhealthy","provider":"gemini","provider_status":"disconnected"}`))
	}))
	defer srv.Close()

	out, err := execute(t, "health", "--server", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini is disconnected")
	assert.Contains(t, out, `"status": "unhealthy"`)
}
