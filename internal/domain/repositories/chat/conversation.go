package chat

import (
	"context"

	"webcraft/internal/domain/models/chat"
)

// ConversationRepository defines data access for conversations
type ConversationRepository interface {
	// Create inserts a conversation; ID and timestamps must already be set
	Create(ctx context.Context, conv *chat.Conversation) error

	// Get retrieves a conversation by ID
	// Returns domain.ErrNotFound if not found
	Get(ctx context.Context, id string) (*chat.Conversation, error)

	// List returns all conversations, most recently updated first
	// Returns empty slice if none exist
	List(ctx context.Context) ([]chat.Conversation, error)

	// UpdateTitle sets the title and bumps updated_at
	// Returns domain.ErrNotFound if not found
	UpdateTitle(ctx context.Context, id, title string) error

	// UpdateContext persists the project memory fields of conv
	// Returns domain.ErrNotFound if not found
	UpdateContext(ctx context.Context, conv *chat.Conversation) error

	// Delete removes a conversation, cascading to messages and files
	// Returns domain.ErrNotFound if not found
	Delete(ctx context.Context, id string) error
}
