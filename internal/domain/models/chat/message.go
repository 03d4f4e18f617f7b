package chat

import "time"

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is an immutable chat message. Seq is assigned by the store and is
// strictly increasing, so it defines display order within a conversation.
type Message struct {
	ID             string    `json:"id" db:"id"`
	ConversationID string    `json:"conversationId" db:"conversation_id"`
	Role           string    `json:"role" db:"role"`
	Content        string    `json:"content" db:"content"`
	Seq            int64     `json:"seq" db:"seq"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
