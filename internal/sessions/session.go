// Package sessions provides the domain system for chat sessions and their
// ordered message history.
package sessions

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

const titleLimit = 30

// Session groups the ordered messages of one conversation.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is a single conversation turn.
type Message struct {
	ID        uuid.UUID      `json:"id"`
	SessionID uuid.UUID      `json:"session_id"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// TitleFromMessage derives a session title from the opening message,
// truncated to a display-friendly length.
func TitleFromMessage(message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return "New Chat"
	}
	if utf8.RuneCountInString(message) <= titleLimit {
		return message
	}
	return strings.TrimSpace(string([]rune(message)[:titleLimit]))
}
