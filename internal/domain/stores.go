package domain

import (
	"context"

	"github.com/google/uuid"
)

// KnowledgeFilter is a conjunction over record fields. Nil members are
// unconstrained. Subtopic matches the full label case-insensitively.
type KnowledgeFilter struct {
	TopicID  *uuid.UUID
	Subtopic *string
	Intent   *Intent
}

// Empty reports whether the filter constrains nothing.
func (f KnowledgeFilter) Empty() bool {
	return f.TopicID == nil && f.Subtopic == nil && f.Intent == nil
}

type KnowledgeStore interface {
	FindAll(ctx context.Context) ([]KnowledgeRecord, error)
	FindByFilter(ctx context.Context, filter KnowledgeFilter) ([]KnowledgeRecord, error)
}

type TopicStore interface {
	FindAll(ctx context.Context) ([]Topic, error)
	GetByKey(ctx context.Context, key string) (*Topic, error)
}

type ConversationStore interface {
	AppendMessage(ctx context.Context, m *ChatMessage) error
	GetBySessionID(ctx context.Context, sessionID string, limit int) ([]ChatMessage, error)
}

// FeedbackSink receives feedback events. Implementations must tolerate
// concurrent writers; callers treat failures as non-fatal.
type FeedbackSink interface {
	Create(ctx context.Context, f *FeedbackEvent) error
}

// FeedbackLister reads back recorded feedback for corpus curation.
type FeedbackLister interface {
	ListRecent(ctx context.Context, limit int) ([]FeedbackEvent, error)
}
