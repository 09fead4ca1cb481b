package requests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bind(t *testing.T, body string, dst any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(dst)
}

func TestChatMessageRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "valid", body: `{"message":"hi"}`},
		{name: "missing message", body: `{}`, wantMsg: "message is required"},
		{name: "message too long", body: `{"message":"` + strings.Repeat("a", 1001) + `"}`, wantMsg: "message must be at most 1000 characters"},
		{name: "context too long", body: `{"message":"hi","context":"` + strings.Repeat("a", 5001) + `"}`, wantMsg: "context must be at most 5000 characters"},
		{name: "bad json", body: `{"message":`, wantMsg: ""},
		{name: "wrong type", body: `{"message":42}`, wantMsg: "field message must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ChatMessageRequest
			err := bind(t, tt.body, &req)
			if tt.name == "valid" {
				require.NoError(t, err)
				assert.Equal(t, "hi", req.Message)
				return
			}
			require.Error(t, err)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, ValidationMessage(err))
			}
		})
	}
}

func TestChatMessageRequest_LongConversationIDAccepted(t *testing.T) {
	id := strings.Repeat("c", 300)
	var req ChatMessageRequest
	require.NoError(t, bind(t, `{"message":"hi","conversation_id":"`+id+`"}`, &req))
	assert.Equal(t, id, req.ConversationID)
}

func TestTextAnalysisRequest_Validation(t *testing.T) {
	var req TextAnalysisRequest
	require.NoError(t, bind(t, `{"text":"hello","analysis_type":"summary"}`, &req))
	assert.Equal(t, "summary", req.AnalysisType)

	req = TextAnalysisRequest{}
	require.NoError(t, bind(t, `{"text":"hello"}`, &req))
	assert.Empty(t, req.AnalysisType)

	err := bind(t, `{"text":"hello","analysis_type":"poetry"}`, &TextAnalysisRequest{})
	require.Error(t, err)
	assert.Equal(t, "analysis_type must be one of: sentiment, summary, comprehensive", ValidationMessage(err))

	err = bind(t, `{"text":""}`, &TextAnalysisRequest{})
	require.Error(t, err)
	assert.Equal(t, "text is required", ValidationMessage(err))
}
