package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"webcraft/internal/domain/models/chat"
	chatSvc "webcraft/internal/domain/services/chat"
	"webcraft/internal/handler/sse"
	"webcraft/internal/httputil"
	"webcraft/internal/metrics"
)

// MessageHandler handles chat turns streamed over SSE
type MessageHandler struct {
	streamingService chatSvc.StreamingService
	sseConfig        *sse.Config
	metrics          *metrics.Metrics
	logger           *slog.Logger
}

// NewMessageHandler creates a new message handler. A nil config uses sse.DefaultConfig.
func NewMessageHandler(
	streamingService chatSvc.StreamingService,
	sseConfig *sse.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) *MessageHandler {
	if sseConfig == nil {
		sseConfig = sse.DefaultConfig()
	}
	return &MessageHandler{
		streamingService: streamingService,
		sseConfig:        sseConfig,
		metrics:          m,
		logger:           logger,
	}
}

// SendMessage persists a user message and streams the response
// POST /conversations/{id}/messages
//
// Validation and lookup failures are problem responses. Once the stream is
// open every outcome is a terminal event: done, fallback or error.
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id")
	if !ok {
		return
	}

	var req chatSvc.CreateMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	stream, err := sse.NewWriter(w)
	if err != nil {
		httputil.RespondError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	turn, err := h.streamingService.StartTurn(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	stream.Open()
	h.metrics.StreamOpened()
	defer h.metrics.StreamClosed()

	keepAlive := sse.NewTickerKeepAlive(h.sseConfig.KeepAliveInterval)
	keepAlive.Start(r.Context(), stream, h.logger)
	defer keepAlive.Stop()

	sent := false
	emit := func(event chat.StreamEvent) error {
		if event.IsTerminal() {
			sent = true
		}
		return stream.WriteEvent(event)
	}

	if err := turn.Run(r.Context(), emit); err != nil {
		if errors.Is(err, context.Canceled) {
			h.logger.Info("client disconnected", "conversation_id", id)
			return
		}
		h.logger.Warn("turn ended with error", "conversation_id", id, "error", err)
	}

	// a turn that returned without a terminal event still must close the stream cleanly
	if !sent && r.Context().Err() == nil {
		if err := stream.WriteEvent(chat.NewErrorEvent("response ended unexpectedly")); err != nil {
			h.logger.Debug("final error event not delivered", "error", err)
		}
	}
}
