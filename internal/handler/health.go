package handler

import (
	"net/http"

	chatSvc "webcraft/internal/domain/services/chat"
	"webcraft/internal/httputil"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	AIMode  string `json:"aiMode"`
	Message string `json:"message"`
}

// HealthHandler reports liveness and which response backend is active
type HealthHandler struct {
	streamingService chatSvc.StreamingService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(streamingService chatSvc.StreamingService) *HealthHandler {
	return &HealthHandler{streamingService: streamingService}
}

// Health reports the AI mode
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	mode := h.streamingService.Mode()

	message := "Cloud AI is configured"
	if mode == chatSvc.ModeLocal {
		message = "No cloud credentials configured, using the local template engine"
	}

	httputil.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		AIMode:  mode,
		Message: message,
	})
}
