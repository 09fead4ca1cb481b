package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/vision-chat-api/internal/config"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{ServiceName: "vision-chat-api", Environment: "test", LogLevel: "debug", LogFormat: "json"}

	log := NewWithWriter(cfg, &buf)
	log.Info().Str("conversation_id", "conv_1").Msg("message processed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "vision-chat-api", entry["service"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "conv_1", entry["conversation_id"])
	assert.Equal(t, "message processed", entry["message"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
}

func TestSetDefault_RoutesGlobalLogger(t *testing.T) {
	previous, previousLevel := zlog.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		zlog.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})

	var buf bytes.Buffer
	cfg := &config.Config{ServiceName: "vision-chat-api", Environment: "test", LogLevel: "warn", LogFormat: "json"}
	SetDefault(NewWithWriter(cfg, &buf))

	zlog.Info().Msg("dropped")
	zlog.Error().Str("path", "/api/v1/chat/message").Msg("unhandled error")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "vision-chat-api", entry["service"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "unhandled error", entry["message"])
}
