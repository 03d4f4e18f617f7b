package chat

import (
	"context"

	"webcraft/internal/domain/models/chat"
)

// ProjectFileService defines project file management and preview assembly
type ProjectFileService interface {
	ListFiles(ctx context.Context, conversationID string) ([]chat.ProjectFile, error)

	// SaveFile upserts a file by path
	SaveFile(ctx context.Context, conversationID string, req *SaveFileRequest) (*chat.ProjectFile, error)

	// SaveFiles upserts many files atomically, skipping entries without path or content
	SaveFiles(ctx context.Context, conversationID string, req *BulkSaveFilesRequest) ([]chat.ProjectFile, error)

	UpdateFile(ctx context.Context, id string, req *UpdateFileRequest) (*chat.ProjectFile, error)
	DeleteFile(ctx context.Context, id string) error

	// Preview assembles the conversation's files into one HTML document.
	// Returns domain.ErrNotFound when there is no HTML file.
	Preview(ctx context.Context, conversationID string) (string, error)
}

// SaveFileRequest is the DTO for a single file upsert
type SaveFileRequest struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// BulkSaveFilesRequest is the DTO for POST /conversations/{id}/files/bulk
type BulkSaveFilesRequest struct {
	Files []SaveFileRequest `json:"files"`
}

// UpdateFileRequest is the DTO for PUT /files/{id}
type UpdateFileRequest struct {
	Content *string `json:"content"`
}
