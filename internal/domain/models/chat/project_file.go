package chat

import "time"

// ProjectFile is a named code blob extracted from a conversation.
// Path is unique per conversation; re-saving a path keeps the ID.
type ProjectFile struct {
	ID             string    `json:"id" db:"id"`
	ConversationID string    `json:"conversationId" db:"conversation_id"`
	Path           string    `json:"path" db:"path"`
	Content        string    `json:"content" db:"content"`
	Language       string    `json:"language" db:"language"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
