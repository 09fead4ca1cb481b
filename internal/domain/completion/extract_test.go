package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractStructuredResult(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]any
		wantErr string
	}{
		{
			name: "embedded object",
			raw:  `noise{"a":1}trailing`,
			want: map[string]any{"a": float64(1)},
		},
		{
			name: "fenced markdown",
			raw:  "```json\n{\"overall_sentiment\": \"positive\", \"emotions\": [\"joy\"]}\n```",
			want: map[string]any{"overall_sentiment": "positive", "emotions": []any{"joy"}},
		},
		{
			name: "nested braces use outermost pair",
			raw:  `Result: {"sentiment": {"overall": "neutral"}} done`,
			want: map[string]any{"sentiment": map[string]any{"overall": "neutral"}},
		},
		{
			name:    "no braces",
			raw:     "no braces here",
			wantErr: ErrNoJSONStructure,
		},
		{
			name:    "only opening brace",
			raw:     "{ unterminated",
			wantErr: ErrNoJSONStructure,
		},
		{
			name:    "invalid json",
			raw:     `{"a":}`,
			wantErr: ErrInvalidJSONFormat,
		},
		{
			name:    "closing before opening",
			raw:     "} reversed {",
			wantErr: ErrInvalidJSONFormat,
		},
		{
			name:    "two objects",
			raw:     `{"a":1} and {"b":2}`,
			wantErr: ErrInvalidJSONFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractStructuredResult(tt.raw)
			if tt.wantErr == "" {
				assert.Equal(t, tt.want, got)
				return
			}
			assert.Equal(t, false, got["parsed"])
			assert.Equal(t, tt.wantErr, got["error"])
			assert.Equal(t, tt.raw, got["raw_response"])
		})
	}
}
