package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"jan-server/services/vision-chat-api/internal/domain/conversation"
)

// MemoryStore is a mutex-based in-memory conversation store.
// A single RWMutex guards the map and every conversation in it, so appends
// to one conversation are serialized and readers only ever see snapshots.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string]*conversation.Conversation
	now           func() time.Time
	log           zerolog.Logger
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithClock overrides the time source used for createdAt/lastActivity.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates a new in-memory conversation store.
func NewMemoryStore(log zerolog.Logger, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		conversations: make(map[string]*conversation.Conversation),
		now:           func() time.Time { return time.Now().UTC() },
		log:           log.With().Str("component", "conversation-store").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new empty conversation. An existing conversation with the same ID is replaced.
func (s *MemoryStore) Create(ctx context.Context, id string) (*conversation.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.conversations[id]; exists {
		s.log.Warn().Str("conversation_id", id).Msg("replacing existing conversation")
	}
	conv := s.newConversation(id)
	s.conversations[id] = conv
	return conv.Clone(), nil
}

// Get returns a snapshot of the conversation, or nil when it does not exist.
func (s *MemoryStore) Get(ctx context.Context, id string) (*conversation.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.conversations[id].Clone(), nil
}

// Append adds a turn to the conversation, creating it first when absent.
func (s *MemoryStore) Append(ctx context.Context, id string, turn conversation.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		conv = s.newConversation(id)
		s.conversations[id] = conv
	}

	conv.Turns = append(conv.Turns, turn)
	now := s.now()
	if now.Before(conv.CreatedAt) {
		now = conv.CreatedAt
	}
	conv.LastActivity = now
	return nil
}

// List returns a summary per conversation, most recent activity first.
func (s *MemoryStore) List(ctx context.Context) ([]conversation.Summary, error) {
	s.mu.RLock()
	summaries := make([]conversation.Summary, 0, len(s.conversations))
	for _, conv := range s.conversations {
		summaries = append(summaries, conv.Summary())
	}
	s.mu.RUnlock()

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].LastActivity.Equal(summaries[j].LastActivity) {
			return summaries[i].ID < summaries[j].ID
		}
		return summaries[i].LastActivity.After(summaries[j].LastActivity)
	})
	return summaries, nil
}

// Delete removes a conversation and reports whether it existed.
func (s *MemoryStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[id]; !ok {
		return false, nil
	}
	delete(s.conversations, id)
	return true, nil
}

// Stats returns aggregate counters. Every stored conversation counts as active.
func (s *MemoryStore) Stats(ctx context.Context) (conversation.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := conversation.Stats{
		TotalConversations:  len(s.conversations),
		ActiveConversations: len(s.conversations),
	}
	for _, conv := range s.conversations {
		stats.TotalMessages += len(conv.Turns)
	}
	return stats, nil
}

func (s *MemoryStore) newConversation(id string) *conversation.Conversation {
	now := s.now()
	return &conversation.Conversation{
		ID:           id,
		Turns:        []conversation.ChatTurn{},
		CreatedAt:    now,
		LastActivity: now,
	}
}
