package handler

import (
	"log/slog"
	"net/http"

	chatSvc "webcraft/internal/domain/services/chat"
	"webcraft/internal/httputil"
)

// PreviewCSP runs preview scripts in an opaque origin
const PreviewCSP = "sandbox allow-scripts"

// FileHandler handles project file HTTP requests
type FileHandler struct {
	fileService chatSvc.ProjectFileService
	logger      *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService chatSvc.ProjectFileService, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		logger:      logger,
	}
}

// ListFiles lists a conversation's files ordered by path
// GET /conversations/{id}/files
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id")
	if !ok {
		return
	}

	list, err := h.fileService.ListFiles(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, list)
}

// SaveFile upserts a file by path
// POST /conversations/{id}/files
func (h *FileHandler) SaveFile(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id")
	if !ok {
		return
	}

	var req chatSvc.SaveFileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	file, err := h.fileService.SaveFile(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, file)
}

// SaveFiles upserts many files at once; incomplete entries are skipped
// POST /conversations/{id}/files/bulk
func (h *FileHandler) SaveFiles(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id")
	if !ok {
		return
	}

	var req chatSvc.BulkSaveFilesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	saved, err := h.fileService.SaveFiles(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, saved)
}

// UpdateFile replaces a file's content
// PUT /files/{id}
func (h *FileHandler) UpdateFile(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id")
	if !ok {
		return
	}

	var req chatSvc.UpdateFileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	file, err := h.fileService.UpdateFile(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// DeleteFile deletes a file
// DELETE /files/{id}
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.fileService.DeleteFile(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// Preview serves the combined HTML/CSS/JS document of a conversation
// GET /conversations/{id}/preview
func (h *FileHandler) Preview(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id")
	if !ok {
		return
	}

	doc, err := h.fileService.Preview(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Security-Policy", PreviewCSP)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	httputil.RespondHTML(w, http.StatusOK, doc)
}
