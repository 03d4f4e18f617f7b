package handler

import (
	"log/slog"
	"net/http"

	"webcraft/internal/domain/models/chat"
	chatSvc "webcraft/internal/domain/services/chat"
	"webcraft/internal/httputil"
)

// ConversationHandler handles conversation HTTP requests
type ConversationHandler struct {
	conversationService chatSvc.ConversationService
	logger              *slog.Logger
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(conversationService chatSvc.ConversationService, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{
		conversationService: conversationService,
		logger:              logger,
	}
}

// ListConversations returns all conversations without messages
// GET /conversations
func (h *ConversationHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	convs, err := h.conversationService.ListConversations(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, convs)
}

// CreateConversation creates a conversation. The body is optional.
// POST /conversations
func (h *ConversationHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req chatSvc.CreateConversationRequest
	if r.ContentLength != 0 {
		if !decodeBody(w, r, &req) {
			return
		}
	}

	conv, err := h.conversationService.CreateConversation(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, conv)
}

// GetConversation returns a conversation with its ordered messages
// GET /conversations/{id}
func (h *ConversationHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id")
	if !ok {
		return
	}

	conv, err := h.conversationService.GetConversation(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, conv)
}

// DeleteConversation deletes a conversation with its messages and files
// DELETE /conversations/{id}
func (h *ConversationHandler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.conversationService.DeleteConversation(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// UpdateContext merges a partial project context
// PUT /conversations/{id}/context
func (h *ConversationHandler) UpdateContext(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id")
	if !ok {
		return
	}

	var patch chat.ProjectContext
	if !decodeBody(w, r, &patch) {
		return
	}

	conv, err := h.conversationService.UpdateContext(r.Context(), id, patch)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, conv)
}

// AddAssistantMessage stores a response produced by the client's local engine
// POST /conversations/{id}/assistant-messages
func (h *ConversationHandler) AddAssistantMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id")
	if !ok {
		return
	}

	var req chatSvc.CreateMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	msg, err := h.conversationService.AddAssistantMessage(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, msg)
}
