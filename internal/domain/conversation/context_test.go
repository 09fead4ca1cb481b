package conversation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withTurns(n int) *Conversation {
	conv := &Conversation{ID: "conv_test"}
	for i := 1; i <= n; i++ {
		conv.Turns = append(conv.Turns, ChatTurn{
			User: fmt.Sprintf("question %d", i),
			AI:   fmt.Sprintf("answer %d", i),
		})
	}
	return conv
}

func TestBuildContext_WindowsLastFiveTurns(t *testing.T) {
	got := BuildContext(withTurns(7), "")
	lines := strings.Split(got, "\n")

	assert.Equal(t, "Recent conversation:", lines[0])
	assert.Len(t, lines, 1+2*HistoryWindow)
	assert.Equal(t, "User: question 3", lines[1])
	assert.Equal(t, "AI: answer 3", lines[2])
	assert.Equal(t, "User: question 7", lines[9])
	assert.Equal(t, "AI: answer 7", lines[10])
	assert.NotContains(t, got, "question 2")
	assert.NotContains(t, got, "Additional context")
}

func TestBuildContext_OnlyAdditionalContext(t *testing.T) {
	assert.Equal(t, "Additional context: a photo of a cat", BuildContext(withTurns(0), "a photo of a cat"))
	assert.Equal(t, "Additional context: x", BuildContext(nil, "x"))
}

func TestBuildContext_Empty(t *testing.T) {
	assert.Equal(t, "", BuildContext(nil, ""))
	assert.Equal(t, "", BuildContext(withTurns(0), ""))
}

func TestBuildContext_AdditionalThenHistory(t *testing.T) {
	got := BuildContext(withTurns(2), "notes")

	assert.Equal(t, strings.Join([]string{
		"Additional context: notes",
		"Recent conversation:",
		"User: question 1",
		"AI: answer 1",
		"User: question 2",
		"AI: answer 2",
	}, "\n"), got)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short"))

	exact := strings.Repeat("a", PreviewLength)
	assert.Equal(t, exact, Preview(exact))

	long := strings.Repeat("é", PreviewLength+10)
	assert.Equal(t, strings.Repeat("é", PreviewLength)+"...", Preview(long))
}

func TestSummary(t *testing.T) {
	conv := withTurns(3)
	s := conv.Summary()
	assert.Equal(t, "conv_test", s.ID)
	assert.Equal(t, 3, s.TurnCount)
	assert.Equal(t, "question 1", s.Preview)

	assert.Equal(t, "", (&Conversation{ID: "empty"}).Summary().Preview)
}
