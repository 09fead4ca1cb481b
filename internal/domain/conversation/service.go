package conversation

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"jan-server/services/vision-chat-api/internal/utils/idgen"
	"jan-server/services/vision-chat-api/internal/utils/platformerrors"
)

// IDPrefix prefixes generated conversation IDs.
const IDPrefix = "conv"

const idLength = 24

// Completer produces the AI reply for a chat message given its rendered context.
type Completer interface {
	ChatCompletion(ctx context.Context, message, history string) (string, error)
}

// Service defines the business operations for chat conversations.
type Service interface {
	ProcessMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error)
	GetConversation(ctx context.Context, id string) (*Conversation, error)
	ListConversations(ctx context.Context) ([]Summary, error)
	DeleteConversation(ctx context.Context, id string) error
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	store     Store
	completer Completer
	now       func() time.Time
	log       zerolog.Logger
}

// NewService creates a new conversation service.
func NewService(store Store, completer Completer, log zerolog.Logger) Service {
	return &service{
		store:     store,
		completer: completer,
		now:       func() time.Time { return time.Now().UTC() },
		log:       log.With().Str("component", "conversation-service").Logger(),
	}
}

// ProcessMessage answers a message within its conversation. The turn is only
// stored once the completer has succeeded.
func (s *service) ProcessMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		id, err := idgen.GenerateSecureID(IDPrefix, idLength)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to generate conversation ID")
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
				"failed to generate conversation ID", err)
		}
		conversationID = id
	}

	conv, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load conversation")
	}

	history := BuildContext(conv, req.Context)

	reply, err := s.completer.ChatCompletion(ctx, req.Message, history)
	if err != nil {
		s.log.Warn().Err(err).Str("conversation_id", conversationID).Msg("chat completion failed, turn not stored")
		return nil, err
	}

	turn := ChatTurn{
		User:      req.Message,
		AI:        reply,
		Timestamp: s.now(),
	}
	if err := s.store.Append(ctx, conversationID, turn); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to store chat turn")
	}

	s.log.Debug().
		Str("conversation_id", conversationID).
		Int("history_chars", len(history)).
		Msg("chat turn stored")

	return &MessageResponse{
		Response:       reply,
		ConversationID: conversationID,
		Timestamp:      turn.Timestamp,
	}, nil
}

func (s *service) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	conv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load conversation")
	}
	if conv == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"Conversation not found", nil)
	}
	return conv, nil
}

func (s *service) ListConversations(ctx context.Context) ([]Summary, error) {
	summaries, err := s.store.List(ctx)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list conversations")
	}
	return summaries, nil
}

func (s *service) DeleteConversation(ctx context.Context, id string) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete conversation")
	}
	if !deleted {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"Conversation not found", nil)
	}
	s.log.Info().Str("conversation_id", id).Msg("conversation deleted")
	return nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return Stats{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to read conversation stats")
	}
	return stats, nil
}
