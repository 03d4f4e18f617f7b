package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"webcraft/internal/domain"
	"webcraft/internal/domain/models/chat"
	chatRepo "webcraft/internal/domain/repositories/chat"
)

// MessageRepository implements chatRepo.MessageRepository
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(config *RepositoryConfig) chatRepo.MessageRepository {
	return &MessageRepository{db: config.DB}
}

// Create appends a message; seq comes from the AUTOINCREMENT key
func (r *MessageRepository) Create(ctx context.Context, msg *chat.Message) error {
	query := `INSERT INTO messages (id, conversation_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING seq`

	err := getExecutor(ctx, r.db).QueryRowContext(ctx, query,
		msg.ID,
		msg.ConversationID,
		msg.Role,
		msg.Content,
		formatTime(msg.CreatedAt),
	).Scan(&msg.Seq)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("conversation %s: %w", msg.ConversationID, domain.ErrNotFound)
		}
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

// ListByConversation returns a conversation's messages in creation order
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]chat.Message, error) {
	query := `SELECT id, conversation_id, role, content, seq, created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY seq ASC`

	rows, err := getExecutor(ctx, r.db).QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := []chat.Message{}
	for rows.Next() {
		var (
			msg       chat.Message
			createdAt string
		)
		if err := rows.Scan(
			&msg.ID,
			&msg.ConversationID,
			&msg.Role,
			&msg.Content,
			&msg.Seq,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		if msg.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}
