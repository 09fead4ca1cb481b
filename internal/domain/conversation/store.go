package conversation

import "context"

// Store is the authoritative keyed collection of conversations.
// Implementations must be safe for concurrent use and must serialize
// appends to the same conversation.
type Store interface {
	// Create inserts an empty conversation, replacing any existing one with the same ID.
	Create(ctx context.Context, id string) (*Conversation, error)

	// Get returns a snapshot of the conversation, or nil if it does not exist.
	Get(ctx context.Context, id string) (*Conversation, error)

	// Append adds a turn, creating the conversation first when absent.
	Append(ctx context.Context, id string, turn ChatTurn) error

	// List returns one summary per conversation, most recent activity first.
	List(ctx context.Context) ([]Summary, error)

	// Delete removes the conversation and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)

	// Stats returns aggregate counters over all conversations.
	Stats(ctx context.Context) (Stats, error)
}
