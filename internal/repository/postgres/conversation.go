package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"webcraft/internal/domain"
	"webcraft/internal/domain/models/chat"
	chatRepo "webcraft/internal/domain/repositories/chat"
)

const conversationColumns = `id, title, project_name, project_description, tech_stack, features_built,
		project_summary, last_code_generated, created_at, updated_at`

// PostgresConversationRepository implements chatRepo.ConversationRepository
type PostgresConversationRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(config *RepositoryConfig) chatRepo.ConversationRepository {
	return &PostgresConversationRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new conversation
func (r *PostgresConversationRepository) Create(ctx context.Context, conv *chat.Conversation) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, r.tables.Conversations, conversationColumns)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		conv.ID,
		conv.Title,
		conv.ProjectName,
		conv.ProjectDescription,
		nonNil(conv.TechStack),
		nonNil(conv.FeaturesBuilt),
		conv.ProjectSummary,
		conv.LastCodeGenerated,
		conv.CreatedAt,
		conv.UpdatedAt,
	)
	if err != nil {
		if IsPgDuplicateError(err) {
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
func (r *PostgresConversationRepository) Get(ctx context.Context, id string) (*chat.Conversation, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, conversationColumns, r.tables.Conversations)

	executor := GetExecutor(ctx, r.pool)
	conv, err := scanConversation(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("conversation %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	return conv, nil
}

// List returns all conversations, most recently updated first
func (r *PostgresConversationRepository) List(ctx context.Context) ([]chat.Conversation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY updated_at DESC, created_at DESC
	`, conversationColumns, r.tables.Conversations)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
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
func (r *PostgresConversationRepository) UpdateTitle(ctx context.Context, id, title string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, updated_at = NOW()
		WHERE id = $2
	`, r.tables.Conversations)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, title, id)
	if err != nil {
		return fmt.Errorf("update conversation title: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("conversation %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateContext persists the project memory columns
func (r *PostgresConversationRepository) UpdateContext(ctx context.Context, conv *chat.Conversation) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET project_name = $1,
			project_description = $2,
			tech_stack = $3,
			features_built = $4,
			project_summary = $5,
			last_code_generated = $6,
			updated_at = $7
		WHERE id = $8
	`, r.tables.Conversations)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		conv.ProjectName,
		conv.ProjectDescription,
		nonNil(conv.TechStack),
		nonNil(conv.FeaturesBuilt),
		conv.ProjectSummary,
		conv.LastCodeGenerated,
		conv.UpdatedAt,
		conv.ID,
	)
	if err != nil {
		return fmt.Errorf("update conversation context: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("conversation %s: %w", conv.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a conversation; messages and files cascade
func (r *PostgresConversationRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Conversations)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("conversation %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConversation(row rowScanner) (*chat.Conversation, error) {
	var conv chat.Conversation
	err := row.Scan(
		&conv.ID,
		&conv.Title,
		&conv.ProjectName,
		&conv.ProjectDescription,
		&conv.TechStack,
		&conv.FeaturesBuilt,
		&conv.ProjectSummary,
		&conv.LastCodeGenerated,
		&conv.CreatedAt,
		&conv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	conv.TechStack = nonNil(conv.TechStack)
	conv.FeaturesBuilt = nonNil(conv.FeaturesBuilt)
	return &conv, nil
}

// nonNil keeps NOT NULL array columns and JSON output as [] rather than null
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
