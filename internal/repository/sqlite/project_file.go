package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"webcraft/internal/domain"
	"webcraft/internal/domain/models/chat"
	chatRepo "webcraft/internal/domain/repositories/chat"
)

const projectFileColumns = `id, conversation_id, path, content, language, created_at, updated_at`

// ProjectFileRepository implements chatRepo.ProjectFileRepository
type ProjectFileRepository struct {
	db *sql.DB
}

// NewProjectFileRepository creates a new project file repository
func NewProjectFileRepository(config *RepositoryConfig) chatRepo.ProjectFileRepository {
	return &ProjectFileRepository{db: config.DB}
}

// Upsert inserts a file or replaces the one at the same path.
// The existing row keeps its id and created_at.
func (r *ProjectFileRepository) Upsert(ctx context.Context, file *chat.ProjectFile) error {
	query := `INSERT INTO project_files (` + projectFileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (conversation_id, path) DO UPDATE
		SET content = excluded.content,
			language = excluded.language,
			updated_at = excluded.updated_at
		RETURNING id, created_at`

	var createdAt string
	err := getExecutor(ctx, r.db).QueryRowContext(ctx, query,
		file.ID,
		file.ConversationID,
		file.Path,
		file.Content,
		file.Language,
		formatTime(file.CreatedAt),
		formatTime(file.UpdatedAt),
	).Scan(&file.ID, &createdAt)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("conversation %s: %w", file.ConversationID, domain.ErrNotFound)
		}
		return fmt.Errorf("upsert project file: %w", err)
	}

	if file.CreatedAt, err = parseTime(createdAt); err != nil {
		return fmt.Errorf("parse created_at: %w", err)
	}
	return nil
}

// Get retrieves a file by ID
func (r *ProjectFileRepository) Get(ctx context.Context, id string) (*chat.ProjectFile, error) {
	query := `SELECT ` + projectFileColumns + ` FROM project_files WHERE id = ?`

	file, err := scanProjectFile(getExecutor(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project file %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project file: %w", err)
	}

	return file, nil
}

// ListByConversation returns a conversation's files ordered by path
func (r *ProjectFileRepository) ListByConversation(ctx context.Context, conversationID string) ([]chat.ProjectFile, error) {
	query := `SELECT ` + projectFileColumns + `
		FROM project_files
		WHERE conversation_id = ?
		ORDER BY path ASC`

	rows, err := getExecutor(ctx, r.db).QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list project files: %w", err)
	}
	defer rows.Close()

	files := []chat.ProjectFile{}
	for rows.Next() {
		file, err := scanProjectFile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project file: %w", err)
		}
		files = append(files, *file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project files: %w", err)
	}

	return files, nil
}

// UpdateContent replaces a file's content
func (r *ProjectFileRepository) UpdateContent(ctx context.Context, file *chat.ProjectFile) error {
	query := `UPDATE project_files SET content = ?, updated_at = ? WHERE id = ?`

	result, err := getExecutor(ctx, r.db).ExecContext(ctx, query, file.Content, formatTime(file.UpdatedAt), file.ID)
	if err != nil {
		return fmt.Errorf("update project file: %w", err)
	}

	return requireRow(result, "project file", file.ID)
}

// Delete removes a file by ID
func (r *ProjectFileRepository) Delete(ctx context.Context, id string) error {
	result, err := getExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM project_files WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project file: %w", err)
	}

	return requireRow(result, "project file", id)
}

func scanProjectFile(row rowScanner) (*chat.ProjectFile, error) {
	var (
		file                 chat.ProjectFile
		createdAt, updatedAt string
	)
	err := row.Scan(
		&file.ID,
		&file.ConversationID,
		&file.Path,
		&file.Content,
		&file.Language,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if file.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if file.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &file, nil
}
