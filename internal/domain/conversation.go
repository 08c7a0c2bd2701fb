package domain

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	RoleUser MessageRole = "user"
	RoleBot  MessageRole = "bot"
)

func ValidMessageRole(r string) bool {
	switch MessageRole(r) {
	case RoleUser, RoleBot:
		return true
	}
	return false
}

// ChatMessage is one side of a conversation turn, keyed by the caller's
// session id. History is write-mostly; the resolution pipeline never reads it.
type ChatMessage struct {
	ID        uuid.UUID   `json:"id"`
	SessionID string      `json:"session_id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}
