package store

import (
	"context"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ConversationStore struct {
	db *pgxpool.Pool
}

func NewConversationStore(db *pgxpool.Pool) *ConversationStore {
	return &ConversationStore{db: db}
}

func (s *ConversationStore) AppendMessage(ctx context.Context, m *domain.ChatMessage) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO chat_messages (session_id, role, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		m.SessionID, m.Role, m.Content,
	).Scan(&m.ID, &m.CreatedAt)
}

func (s *ConversationStore) GetBySessionID(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, session_id, role, content, created_at
		 FROM chat_messages WHERE session_id = $1
		 ORDER BY created_at
		 LIMIT $2`,
		sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
