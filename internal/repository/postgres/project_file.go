package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"webcraft/internal/domain"
	"webcraft/internal/domain/models/chat"
	chatRepo "webcraft/internal/domain/repositories/chat"
)

const projectFileColumns = `id, conversation_id, path, content, language, created_at, updated_at`

// PostgresProjectFileRepository implements chatRepo.ProjectFileRepository
type PostgresProjectFileRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewProjectFileRepository creates a new project file repository
func NewProjectFileRepository(config *RepositoryConfig) chatRepo.ProjectFileRepository {
	return &PostgresProjectFileRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Upsert inserts a file or replaces the one at the same path.
// The existing row keeps its id and created_at.
func (r *PostgresProjectFileRepository) Upsert(ctx context.Context, file *chat.ProjectFile) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (conversation_id, path) DO UPDATE
		SET content = EXCLUDED.content,
			language = EXCLUDED.language,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`, r.tables.ProjectFiles, projectFileColumns)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		file.ID,
		file.ConversationID,
		file.Path,
		file.Content,
		file.Language,
		file.CreatedAt,
		file.UpdatedAt,
	).Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("conversation %s: %w", file.ConversationID, domain.ErrNotFound)
		}
		return fmt.Errorf("upsert project file: %w", err)
	}

	return nil
}

// Get retrieves a file by ID
func (r *PostgresProjectFileRepository) Get(ctx context.Context, id string) (*chat.ProjectFile, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, projectFileColumns, r.tables.ProjectFiles)

	executor := GetExecutor(ctx, r.pool)
	var file chat.ProjectFile
	err := executor.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.ConversationID,
		&file.Path,
		&file.Content,
		&file.Language,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("project file %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project file: %w", err)
	}

	return &file, nil
}

// ListByConversation returns a conversation's files ordered by path
func (r *PostgresProjectFileRepository) ListByConversation(ctx context.Context, conversationID string) ([]chat.ProjectFile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE conversation_id = $1
		ORDER BY path ASC
	`, projectFileColumns, r.tables.ProjectFiles)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list project files: %w", err)
	}
	defer rows.Close()

	files := []chat.ProjectFile{}
	for rows.Next() {
		var file chat.ProjectFile
		if err := rows.Scan(
			&file.ID,
			&file.ConversationID,
			&file.Path,
			&file.Content,
			&file.Language,
			&file.CreatedAt,
			&file.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project files: %w", err)
	}

	return files, nil
}

// UpdateContent replaces a file's content
func (r *PostgresProjectFileRepository) UpdateContent(ctx context.Context, file *chat.ProjectFile) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET content = $1, updated_at = $2
		WHERE id = $3
	`, r.tables.ProjectFiles)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, file.Content, file.UpdatedAt, file.ID)
	if err != nil {
		return fmt.Errorf("update project file: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("project file %s: %w", file.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a file by ID
func (r *PostgresProjectFileRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.ProjectFiles)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete project file: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("project file %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
