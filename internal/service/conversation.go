package service

import (
	"context"
	"errors"

	"github.com/AanV03/Chatbot/internal/domain"
	"go.uber.org/zap"
)

var ErrSessionIDMissing = errors.New("session_id is required")

const defaultHistoryLimit = 50

// ConversationService persists chat history per session so the UI can
// replay a conversation. The resolution pipeline never reads it.
type ConversationService struct {
	store  domain.ConversationStore
	logger *zap.Logger
}

func NewConversationService(store domain.ConversationStore, logger *zap.Logger) *ConversationService {
	return &ConversationService{store: store, logger: logger}
}

// RecordExchange appends both sides of a turn. History writes are best
// effort: failures are logged, never surfaced, because the answer has
// already been computed.
func (s *ConversationService) RecordExchange(ctx context.Context, sessionID, userText, botText string) {
	if sessionID == "" {
		return
	}
	for _, m := range []*domain.ChatMessage{
		{SessionID: sessionID, Role: domain.RoleUser, Content: userText},
		{SessionID: sessionID, Role: domain.RoleBot, Content: botText},
	} {
		if err := s.store.AppendMessage(ctx, m); err != nil {
			s.logger.Warn("failed to persist chat message",
				zap.String("session_id", sessionID),
				zap.String("role", string(m.Role)),
				zap.Error(err))
			return
		}
	}
}

func (s *ConversationService) History(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	if sessionID == "" {
		return nil, ErrSessionIDMissing
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.store.GetBySessionID(ctx, sessionID, limit)
}
