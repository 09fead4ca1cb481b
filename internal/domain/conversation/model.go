package conversation

import (
	"time"
	"unicode/utf8"
)

// PreviewLength is the number of characters of the first user message shown in a summary.
const PreviewLength = 50

// ChatTurn is one user message and the AI reply to it. Immutable once created.
type ChatTurn struct {
	User      string    `json:"user"`
	AI        string    `json:"ai"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is the full, ordered history of a chat.
type Conversation struct {
	ID           string     `json:"conversation_id"`
	Turns        []ChatTurn `json:"messages"`
	CreatedAt    time.Time  `json:"created_at"`
	LastActivity time.Time  `json:"last_activity"`
}

// Clone returns a copy that shares no mutable state with c.
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Turns = make([]ChatTurn, len(c.Turns))
	copy(clone.Turns, c.Turns)
	return &clone
}

// Summary derives the list view of the conversation.
func (c *Conversation) Summary() Summary {
	preview := ""
	if len(c.Turns) > 0 {
		preview = Preview(c.Turns[0].User)
	}
	return Summary{
		ID:           c.ID,
		TurnCount:    len(c.Turns),
		CreatedAt:    c.CreatedAt,
		LastActivity: c.LastActivity,
		Preview:      preview,
	}
}

// Summary is the derived list view of a conversation.
type Summary struct {
	ID           string    `json:"conversation_id"`
	TurnCount    int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	Preview      string    `json:"preview"`
}

// Stats reports store-wide counters.
type Stats struct {
	TotalConversations  int `json:"total_conversations"`
	TotalMessages       int `json:"total_messages"`
	ActiveConversations int `json:"active_conversations"`
}

// Preview truncates text to PreviewLength characters, appending "..." when cut.
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= PreviewLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:PreviewLength]) + "..."
}

// MessageRequest is the input to Service.ProcessMessage.
type MessageRequest struct {
	Message        string
	Context        string
	ConversationID string
}

// MessageResponse is the result of a processed chat message.
type MessageResponse struct {
	Response       string    `json:"response"`
	ConversationID string    `json:"conversation_id"`
	Timestamp      time.Time `json:"timestamp"`
}
