package chat

import (
	"context"

	"webcraft/internal/domain/models/chat"
)

// ProjectFileRepository defines data access for project files
type ProjectFileRepository interface {
	// Upsert inserts or replaces the file at (ConversationID, Path).
	// On replace the existing ID and CreatedAt are written back into file.
	Upsert(ctx context.Context, file *chat.ProjectFile) error

	// Get retrieves a file by ID
	// Returns domain.ErrNotFound if not found
	Get(ctx context.Context, id string) (*chat.ProjectFile, error)

	// ListByConversation returns files ordered by path
	ListByConversation(ctx context.Context, conversationID string) ([]chat.ProjectFile, error)

	// UpdateContent replaces a file's content
	// Returns domain.ErrNotFound if not found
	UpdateContent(ctx context.Context, file *chat.ProjectFile) error

	// Delete removes a file by ID
	// Returns domain.ErrNotFound if not found
	Delete(ctx context.Context, id string) error
}
