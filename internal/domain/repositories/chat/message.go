package chat

import (
	"context"

	"webcraft/internal/domain/models/chat"
)

// MessageRepository defines append-only access to messages
type MessageRepository interface {
	// Create appends a message and assigns msg.Seq
	Create(ctx context.Context, msg *chat.Message) error

	// ListByConversation returns messages ordered by Seq ascending
	ListByConversation(ctx context.Context, conversationID string) ([]chat.Message, error)
}
