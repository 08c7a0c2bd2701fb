package store

import (
	"context"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FeedbackStore struct {
	db *pgxpool.Pool
}

func NewFeedbackStore(db *pgxpool.Pool) *FeedbackStore {
	return &FeedbackStore{db: db}
}

func (s *FeedbackStore) Create(ctx context.Context, f *domain.FeedbackEvent) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO feedback_events (session_id, type, user_message, bot_message, detected_intents, detected_topics, detected_subtopics)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		f.SessionID, f.Type, f.UserMessage, f.BotMessage, f.DetectedIntents, f.DetectedTopics, f.DetectedSubtopics,
	).Scan(&f.ID, &f.CreatedAt)
}

func (s *FeedbackStore) ListRecent(ctx context.Context, limit int) ([]domain.FeedbackEvent, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, session_id, type, user_message, bot_message, detected_intents, detected_topics, detected_subtopics, created_at
		 FROM feedback_events
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.FeedbackEvent
	for rows.Next() {
		var f domain.FeedbackEvent
		if err := rows.Scan(&f.ID, &f.SessionID, &f.Type, &f.UserMessage, &f.BotMessage, &f.DetectedIntents, &f.DetectedTopics, &f.DetectedSubtopics, &f.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, f)
	}
	return events, rows.Err()
}
