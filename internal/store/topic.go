package store

import (
	"context"
	"errors"
	"strings"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TopicStore struct {
	db *pgxpool.Pool
}

func NewTopicStore(db *pgxpool.Pool) *TopicStore {
	return &TopicStore{db: db}
}

func (s *TopicStore) FindAll(ctx context.Context) ([]domain.Topic, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, key, name, description, subtopics, created_at
		 FROM topics ORDER BY key`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []domain.Topic
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.ID, &t.Key, &t.Name, &t.Description, &t.Subtopics, &t.CreatedAt); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (s *TopicStore) GetByKey(ctx context.Context, key string) (*domain.Topic, error) {
	t := &domain.Topic{}
	err := s.db.QueryRow(ctx,
		`SELECT id, key, name, description, subtopics, created_at
		 FROM topics WHERE key = $1`,
		strings.ToLower(key),
	).Scan(&t.ID, &t.Key, &t.Name, &t.Description, &t.Subtopics, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}
