package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"webcraft/internal/domain"
	"webcraft/internal/domain/models/chat"
	chatRepo "webcraft/internal/domain/repositories/chat"
)

const conversationColumns = `id, title, project_name, project_description, tech_stack, features_built,
	project_summary, last_code_generated, created_at, updated_at`

// ConversationRepository implements chatRepo.ConversationRepository
type ConversationRepository struct {
	db *sql.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(config *RepositoryConfig) chatRepo.ConversationRepository {
	return &ConversationRepository{db: config.DB}
}

// Create inserts a new conversation
func (r *ConversationRepository) Create(ctx context.Context, conv *chat.Conversation) error {
	techStack, features, err := encodeLists(conv)
	if err != nil {
		return err
	}

	query := `INSERT INTO conversations (` + conversationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = getExecutor(ctx, r.db).ExecContext(ctx, query,
		conv.ID,
		conv.Title,
		conv.ProjectName,
		conv.ProjectDescription,
		techStack,
		features,
		conv.ProjectSummary,
		conv.LastCodeGenerated,
		formatTime(conv.CreatedAt),
		formatTime(conv.UpdatedAt),
	)
	if err != nil {
		if isUniqueError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("conversation %s already exists", conv.ID),
				ResourceType: "conversation",
				ResourceID:   conv.ID,
			}
		}
		return fmt.Errorf("create conversation: %w", err)
	}

	return nil
}

// Get retrieves a conversation by ID
func (r *ConversationRepository) Get(ctx context.Context, id string) (*chat.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE id = ?`

	conv, err := scanConversation(getExecutor(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("conversation %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	return conv, nil
}

// List returns all conversations, most recently updated first
func (r *ConversationRepository) List(ctx context.Context) ([]chat.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations ORDER BY updated_at DESC, created_at DESC`

	rows, err := getExecutor(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	conversations := []chat.Conversation{}
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		conversations = append(conversations, *conv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversations: %w", err)
	}

	return conversations, nil
}

// UpdateTitle sets a conversation's title
func (r *ConversationRepository) UpdateTitle(ctx context.Context, id, title string) error {
	query := `UPDATE conversations SET title = ?, updated_at = ? WHERE id = ?`

	result, err := getExecutor(ctx, r.db).ExecContext(ctx, query, title, formatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("update conversation title: %w", err)
	}

	return requireRow(result, "conversation", id)
}

// UpdateContext persists the project memory columns
func (r *ConversationRepository) UpdateContext(ctx context.Context, conv *chat.Conversation) error {
	techStack, features, err := encodeLists(conv)
	if err != nil {
		return err
	}

	query := `UPDATE conversations
		SET project_name = ?,
			project_description = ?,
			tech_stack = ?,
			features_built = ?,
			project_summary = ?,
			last_code_generated = ?,
			updated_at = ?
		WHERE id = ?`

	result, err := getExecutor(ctx, r.db).ExecContext(ctx, query,
		conv.ProjectName,
		conv.ProjectDescription,
		techStack,
		features,
		conv.ProjectSummary,
		conv.LastCodeGenerated,
		formatTime(conv.UpdatedAt),
		conv.ID,
	)
	if err != nil {
		return fmt.Errorf("update conversation context: %w", err)
	}

	return requireRow(result, "conversation", conv.ID)
}

// Delete removes a conversation; messages and files cascade
func (r *ConversationRepository) Delete(ctx context.Context, id string) error {
	result, err := getExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM conversations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}

	return requireRow(result, "conversation", id)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConversation(row rowScanner) (*chat.Conversation, error) {
	var (
		conv                 chat.Conversation
		name, desc           sql.NullString
		summary, lastCode    sql.NullString
		techStack, features  string
		createdAt, updatedAt string
	)
	err := row.Scan(
		&conv.ID,
		&conv.Title,
		&name,
		&desc,
		&techStack,
		&features,
		&summary,
		&lastCode,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	conv.ProjectName = nullable(name)
	conv.ProjectDescription = nullable(desc)
	conv.ProjectSummary = nullable(summary)
	conv.LastCodeGenerated = nullable(lastCode)

	if conv.TechStack, err = decodeList(techStack); err != nil {
		return nil, fmt.Errorf("decode tech_stack: %w", err)
	}
	if conv.FeaturesBuilt, err = decodeList(features); err != nil {
		return nil, fmt.Errorf("decode features_built: %w", err)
	}
	if conv.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if conv.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &conv, nil
}

func encodeLists(conv *chat.Conversation) (string, string, error) {
	techStack, err := encodeList(conv.TechStack)
	if err != nil {
		return "", "", fmt.Errorf("encode tech_stack: %w", err)
	}
	features, err := encodeList(conv.FeaturesBuilt)
	if err != nil {
		return "", "", fmt.Errorf("encode features_built: %w", err)
	}
	return techStack, features, nil
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	values := []string{}
	if raw == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func requireRow(result sql.Result, resource, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", resource, id, domain.ErrNotFound)
	}
	return nil
}
