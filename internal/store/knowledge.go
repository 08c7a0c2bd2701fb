package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type KnowledgeStore struct {
	db *pgxpool.Pool
}

func NewKnowledgeStore(db *pgxpool.Pool) *KnowledgeStore {
	return &KnowledgeStore{db: db}
}

const knowledgeColumns = `id, topic_id, subtopic, key_phrase, answer_text, description, examples, keywords, intent, answer_kind, created_at, updated_at`

func (s *KnowledgeStore) FindAll(ctx context.Context) ([]domain.KnowledgeRecord, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+knowledgeColumns+` FROM knowledge_records ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanKnowledgeRecords(rows)
}

func (s *KnowledgeStore) FindByFilter(ctx context.Context, filter domain.KnowledgeFilter) ([]domain.KnowledgeRecord, error) {
	if filter.Empty() {
		return s.FindAll(ctx)
	}

	var conditions []string
	var args []any

	if filter.TopicID != nil {
		conditions = append(conditions, fmt.Sprintf("topic_id = $%d", len(args)+1))
		args = append(args, *filter.TopicID)
	}
	if filter.Subtopic != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(subtopic) = LOWER($%d)", len(args)+1))
		args = append(args, *filter.Subtopic)
	}
	if filter.Intent != nil {
		conditions = append(conditions, fmt.Sprintf("intent = $%d", len(args)+1))
		args = append(args, *filter.Intent)
	}

	query := `SELECT ` + knowledgeColumns + ` FROM knowledge_records WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY created_at, id`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanKnowledgeRecords(rows)
}

type knowledgeRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanKnowledgeRecords(rows knowledgeRows) ([]domain.KnowledgeRecord, error) {
	var records []domain.KnowledgeRecord
	for rows.Next() {
		var r domain.KnowledgeRecord
		if err := rows.Scan(&r.ID, &r.TopicID, &r.Subtopic, &r.KeyPhrase, &r.AnswerText, &r.Description, &r.Examples, &r.Keywords, &r.Intent, &r.AnswerKind, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
