package conversation

import "strings"

// HistoryWindow is how many of the most recent turns are replayed to the model.
const HistoryWindow = 5

// BuildContext renders the prompt context for the next turn: the caller's extra
// context (if any) followed by up to HistoryWindow recent turns, oldest first.
func BuildContext(conv *Conversation, additional string) string {
	var parts []string

	if additional != "" {
		parts = append(parts, "Additional context: "+additional)
	}

	if conv != nil && len(conv.Turns) > 0 {
		recent := conv.Turns
		if len(recent) > HistoryWindow {
			recent = recent[len(recent)-HistoryWindow:]
		}
		parts = append(parts, "Recent conversation:")
		for _, turn := range recent {
			parts = append(parts, "User: "+turn.User, "AI: "+turn.AI)
		}
	}

	return strings.Join(parts, "\n")
}
