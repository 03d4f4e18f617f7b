package handler

import (
	"log/slog"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"webcraft/internal/config"
	chatSvc "webcraft/internal/domain/services/chat"
	"webcraft/internal/httputil"
	"webcraft/internal/metrics"
)

// GenerateRequest is the body of POST /generate
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// Validate implements validation.Validatable
func (r GenerateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Prompt, validation.Required, validation.Length(1, config.MaxMessageLength)),
	)
}

// TemplateHandler exposes the local code engine
type TemplateHandler struct {
	generator chatSvc.CodeGenerator
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(generator chatSvc.CodeGenerator, m *metrics.Metrics, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{
		generator: generator,
		metrics:   m,
		logger:    logger,
	}
}

// ListTemplates returns catalog metadata in declaration order
// GET /templates
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.generator.Templates())
}

// Generate runs the local engine for a prompt
// POST /generate
func (h *TemplateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	req.Prompt = strings.TrimSpace(req.Prompt)
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.generator.Generate(req.Prompt)
	h.metrics.TemplateSelected(result.TemplateID)
	h.logger.Debug("local generation",
		"template_id", result.TemplateID,
		"score", result.Score,
	)

	httputil.RespondJSON(w, http.StatusOK, result)
}
