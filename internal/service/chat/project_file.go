package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"webcraft/internal/config"
	"webcraft/internal/domain"
	"webcraft/internal/domain/models/chat"
	"webcraft/internal/domain/repositories"
	chatRepo "webcraft/internal/domain/repositories/chat"
	chatSvc "webcraft/internal/domain/services/chat"
	"webcraft/internal/metrics"
	"webcraft/internal/service/files"
	"webcraft/internal/service/preview"
)

// projectFileService implements the ProjectFileService interface
type projectFileService struct {
	convRepo  chatRepo.ConversationRepository
	fileRepo  chatRepo.ProjectFileRepository
	txManager repositories.TransactionManager
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewProjectFileService creates a new project file service
func NewProjectFileService(
	convRepo chatRepo.ConversationRepository,
	fileRepo chatRepo.ProjectFileRepository,
	txManager repositories.TransactionManager,
	m *metrics.Metrics,
	logger *slog.Logger,
) chatSvc.ProjectFileService {
	return &projectFileService{
		convRepo:  convRepo,
		fileRepo:  fileRepo,
		txManager: txManager,
		metrics:   m,
		logger:    logger,
	}
}

// ListFiles returns the conversation's files ordered by path
func (s *projectFileService) ListFiles(ctx context.Context, conversationID string) ([]chat.ProjectFile, error) {
	if _, err := s.convRepo.Get(ctx, conversationID); err != nil {
		return nil, err
	}

	list, err := s.fileRepo.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []chat.ProjectFile{}
	}
	return list, nil
}

// SaveFile upserts a single file by path
func (s *projectFileService) SaveFile(ctx context.Context, conversationID string, req *chatSvc.SaveFileRequest) (*chat.ProjectFile, error) {
	normalizeFileRequest(req)
	if err := validateSaveFile(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.convRepo.Get(ctx, conversationID); err != nil {
		return nil, err
	}

	file := newProjectFile(conversationID, req)
	if err := s.fileRepo.Upsert(ctx, file); err != nil {
		return nil, err
	}

	s.metrics.FilesSaved(1)
	s.logger.Debug("project file saved", "conversation_id", conversationID, "path", file.Path, "id", file.ID)

	return file, nil
}

// SaveFiles upserts many files in one transaction.
// Entries without a path or content are skipped; the rest must be valid.
func (s *projectFileService) SaveFiles(ctx context.Context, conversationID string, req *chatSvc.BulkSaveFilesRequest) ([]chat.ProjectFile, error) {
	if len(req.Files) > config.MaxBulkFiles {
		return nil, &domain.ValidationError{
			Field:   "files",
			Message: fmt.Sprintf("at most %d files per request", config.MaxBulkFiles),
		}
	}

	var pending []*chatSvc.SaveFileRequest
	for i := range req.Files {
		f := &req.Files[i]
		normalizeFileRequest(f)
		if f.Path == "" || f.Content == "" {
			continue
		}
		if err := validateSaveFile(f); err != nil {
			return nil, fmt.Errorf("%w: files[%d]: %v", domain.ErrValidation, i, err)
		}
		pending = append(pending, f)
	}

	if _, err := s.convRepo.Get(ctx, conversationID); err != nil {
		return nil, err
	}

	saved := make([]chat.ProjectFile, 0, len(pending))
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		for _, f := range pending {
			file := newProjectFile(conversationID, f)
			if err := s.fileRepo.Upsert(ctx, file); err != nil {
				return err
			}
			saved = append(saved, *file)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.FilesSaved(len(saved))
	s.logger.Info("project files saved",
		"conversation_id", conversationID,
		"saved", len(saved),
		"skipped", len(req.Files)-len(pending),
	)

	return saved, nil
}

// UpdateFile replaces a file's content
func (s *projectFileService) UpdateFile(ctx context.Context, id string, req *chatSvc.UpdateFileRequest) (*chat.ProjectFile, error) {
	if req.Content == nil {
		return nil, &domain.ValidationError{Field: "content", Message: "is required"}
	}
	if err := validation.Validate(*req.Content,
		validation.Required,
		validation.Length(1, config.MaxFileContentLength),
	); err != nil {
		return nil, &domain.ValidationError{Field: "content", Message: err.Error()}
	}

	file, err := s.fileRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	file.Content = *req.Content
	file.UpdatedAt = time.Now()
	if err := s.fileRepo.UpdateContent(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Debug("project file updated", "id", id, "path", file.Path)

	return file, nil
}

// DeleteFile removes a file
func (s *projectFileService) DeleteFile(ctx context.Context, id string) error {
	if err := s.fileRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Debug("project file deleted", "id", id)

	return nil
}

// Preview assembles the conversation's files into one document
func (s *projectFileService) Preview(ctx context.Context, conversationID string) (string, error) {
	list, err := s.ListFiles(ctx, conversationID)
	if err != nil {
		return "", err
	}

	sources := make([]preview.File, len(list))
	for i, f := range list {
		sources[i] = preview.File{Path: f.Path, Content: f.Content}
	}

	doc, ok := preview.Assemble(sources)
	if !ok {
		return "", domain.NewNotFound("html file for conversation", conversationID)
	}
	return doc, nil
}

// normalizeFileRequest cleans the path and infers a missing language
func normalizeFileRequest(req *chatSvc.SaveFileRequest) {
	req.Path = files.CleanPath(req.Path)
	req.Language = strings.TrimSpace(req.Language)
	if req.Language == "" && req.Path != "" {
		req.Language = files.LanguageFromPath(req.Path)
	}
}

func validateSaveFile(req *chatSvc.SaveFileRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Path, validation.Required, validation.Length(1, config.MaxFilePathLength)),
		validation.Field(&req.Content, validation.Required, validation.Length(1, config.MaxFileContentLength)),
		validation.Field(&req.Language, validation.Length(0, config.MaxLanguageLength)),
	)
}

func newProjectFile(conversationID string, req *chatSvc.SaveFileRequest) *chat.ProjectFile {
	now := time.Now()
	return &chat.ProjectFile{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Path:           req.Path,
		Content:        req.Content,
		Language:       req.Language,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
