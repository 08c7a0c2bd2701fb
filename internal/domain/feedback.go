package domain

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackType string

const (
	FeedbackTypeUnanswered FeedbackType = "unanswered"
	FeedbackTypeUnhelpful  FeedbackType = "unhelpful"
)

func ValidFeedbackType(t string) bool {
	switch FeedbackType(t) {
	case FeedbackTypeUnanswered, FeedbackTypeUnhelpful:
		return true
	}
	return false
}

// FeedbackEvent records an unanswered or unhelpful exchange for later
// corpus curation. Writes are fire-and-forget: a failed write never fails
// the query that produced it.
type FeedbackEvent struct {
	ID                uuid.UUID    `json:"id"`
	SessionID         string       `json:"session_id"`
	Type              FeedbackType `json:"type"`
	UserMessage       string       `json:"user_message"`
	BotMessage        string       `json:"bot_message"`
	DetectedIntents   []string     `json:"detected_intents,omitempty"`
	DetectedTopics    []string     `json:"detected_topics,omitempty"`
	DetectedSubtopics []string     `json:"detected_subtopics,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}
