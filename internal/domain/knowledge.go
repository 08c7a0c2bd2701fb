package domain

import (
	"time"

	"github.com/google/uuid"
)

type Intent string

const (
	IntentInformational  Intent = "informational"
	IntentRecommendation Intent = "recommendation"
	IntentTechnical      Intent = "technical"
	IntentHealth         Intent = "health"
)

func ValidIntent(i string) bool {
	switch Intent(i) {
	case IntentInformational, IntentRecommendation, IntentTechnical, IntentHealth:
		return true
	}
	return false
}

type AnswerKind string

const (
	AnswerKindText AnswerKind = "text"
	AnswerKindList AnswerKind = "list"
	AnswerKindLink AnswerKind = "link"
)

func ValidAnswerKind(k string) bool {
	switch AnswerKind(k) {
	case AnswerKindText, AnswerKindList, AnswerKindLink:
		return true
	}
	return false
}

// Topic is a top-level subject category. Topics are read-only to this
// service; the key is unique and lowercase, enforced by the store.
type Topic struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Subtopics   []string  `json:"subtopics,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// KnowledgeRecord is a curated question-answer entry. Subtopic labels are
// free text and not globally unique; Keywords keep their insertion order.
type KnowledgeRecord struct {
	ID          uuid.UUID  `json:"id"`
	TopicID     uuid.UUID  `json:"topic_id"`
	Subtopic    string     `json:"subtopic"`
	KeyPhrase   string     `json:"key_phrase"`
	AnswerText  string     `json:"answer_text"`
	Description string     `json:"description,omitempty"`
	Examples    string     `json:"examples,omitempty"`
	Keywords    []string   `json:"keywords,omitempty"`
	Intent      Intent     `json:"intent"`
	AnswerKind  AnswerKind `json:"answer_kind"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
