package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"webcraft/internal/config"
	"webcraft/internal/domain"
	"webcraft/internal/domain/models/chat"
	chatRepo "webcraft/internal/domain/repositories/chat"
	chatSvc "webcraft/internal/domain/services/chat"
	domainllm "webcraft/internal/domain/services/llm"
	"webcraft/internal/metrics"
	"webcraft/internal/service/files"
	"webcraft/internal/service/projectctx"
)

// StreamingConfig collects the collaborators of the streaming service
type StreamingConfig struct {
	ConversationRepo chatRepo.ConversationRepository
	MessageRepo      chatRepo.MessageRepository
	FileService      chatSvc.ProjectFileService
	Locks            *KeyedMutex

	// Provider is nil when no cloud backend is configured
	Provider      domainllm.Provider
	PromptBuilder domainllm.SystemPromptBuilder
	Model         string
	MaxTokens     int64

	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// streamingService implements the StreamingService interface
type streamingService struct {
	convRepo  chatRepo.ConversationRepository
	msgRepo   chatRepo.MessageRepository
	fileSvc   chatSvc.ProjectFileService
	context   *contextWriter
	provider  domainllm.Provider
	prompts   domainllm.SystemPromptBuilder
	model     string
	maxTokens int64
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewStreamingService creates a new streaming service
func NewStreamingService(cfg StreamingConfig) chatSvc.StreamingService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	locks := cfg.Locks
	if locks == nil {
		locks = NewKeyedMutex()
	}

	return &streamingService{
		convRepo: cfg.ConversationRepo,
		msgRepo:  cfg.MessageRepo,
		fileSvc:  cfg.FileService,
		context: &contextWriter{
			convRepo: cfg.ConversationRepo,
			locks:    locks,
			metrics:  cfg.Metrics,
			logger:   logger,
		},
		provider:  cfg.Provider,
		prompts:   cfg.PromptBuilder,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		metrics:   cfg.Metrics,
		logger:    logger,
	}
}

// Mode reports cloud when a provider is configured
func (s *streamingService) Mode() string {
	if s.provider == nil {
		return chatSvc.ModeLocal
	}
	return chatSvc.ModeCloud
}

// StartTurn validates the message, persists it and auto-titles the conversation
func (s *streamingService) StartTurn(ctx context.Context, conversationID string, req *chatSvc.CreateMessageRequest) (chatSvc.Turn, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Content, validation.Required, validation.Length(1, config.MaxMessageLength)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	conv, err := s.convRepo.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	msg := &chat.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           chat.RoleUser,
		Content:        req.Content,
		CreatedAt:      time.Now(),
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if conv.Title == chat.DefaultConversationTitle {
		if title := titleFromMessage(msg.Content); title != "" {
			if err := s.convRepo.UpdateTitle(ctx, conversationID, title); err != nil {
				s.logger.Warn("auto-title failed", "conversation_id", conversationID, "error", err)
			} else {
				conv.Title = title
			}
		}
	}

	s.logger.Info("turn started",
		"conversation_id", conversationID,
		"message_id", msg.ID,
		"mode", s.Mode(),
	)

	return &turn{svc: s, conv: conv, userMsg: msg, started: time.Now()}, nil
}

// turn is one user message awaiting its response
type turn struct {
	svc     *streamingService
	conv    *chat.Conversation
	userMsg *chat.Message
	started time.Time
}

func (t *turn) UserMessage() *chat.Message {
	return t.userMsg
}

// Run produces the response. Without a provider it only signals the client
// to use its local engine.
func (t *turn) Run(ctx context.Context, emit chatSvc.EmitFunc) error {
	s := t.svc
	if s.provider == nil {
		s.metrics.ObserveTurn(metrics.OutcomeFallback, time.Since(t.started))
		return emit(chat.NewFallbackEvent(t.userMsg.Content))
	}

	// stop the provider goroutine if we return early
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	history, err := s.msgRepo.ListByConversation(ctx, t.conv.ID)
	if err != nil {
		return t.fail(emit, "failed to load conversation history", err)
	}

	events, err := s.provider.StreamText(ctx, t.request(history))
	if err != nil {
		return t.fallback(emit, err)
	}

	var response strings.Builder
	chunks := 0
	for ev := range events {
		switch {
		case ev.Error != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if chunks == 0 {
				return t.fallback(emit, ev.Error)
			}
			return t.fail(emit, "response stream interrupted", ev.Error)
		case ev.Done:
			if ev.Usage != nil {
				s.metrics.AddTokens(ev.Usage.InputTokens, ev.Usage.OutputTokens)
				s.logger.Debug("stream finished",
					"conversation_id", t.conv.ID,
					"input_tokens", ev.Usage.InputTokens,
					"output_tokens", ev.Usage.OutputTokens,
					"stop_reason", ev.Usage.StopReason,
				)
			}
		case ev.Delta != "":
			response.WriteString(ev.Delta)
			chunks++
			if err := emit(chat.NewChunkEvent(ev.Delta)); err != nil {
				return err
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(response.String()) == "" {
		return t.fallback(emit, errors.New("empty response"))
	}

	// the response is complete; persist it even if the client leaves now
	persistCtx := context.WithoutCancel(ctx)
	msg, err := t.finish(persistCtx, history, response.String())
	if err != nil {
		return t.fail(emit, "failed to save response", err)
	}

	s.metrics.ObserveTurn(metrics.OutcomeCloud, time.Since(t.started))
	return emit(chat.NewDoneEvent(msg.ID))
}

// request builds the provider request from the persisted history, which
// already ends with the user message of this turn
func (t *turn) request(history []chat.Message) *domainllm.GenerateRequest {
	s := t.svc
	msgs := make([]domainllm.Message, 0, len(history))
	for _, m := range history {
		msgs = append(msgs, domainllm.Message{Role: m.Role, Content: m.Content})
	}

	req := &domainllm.GenerateRequest{
		Model:     s.model,
		Messages:  msgs,
		MaxTokens: s.maxTokens,
	}
	if s.prompts != nil {
		req.System = s.prompts.Build(t.conv)
	}
	return req
}

// finish saves the assistant message, then updates project memory and files.
// Only the message save is fatal.
func (t *turn) finish(ctx context.Context, history []chat.Message, response string) (*chat.Message, error) {
	s := t.svc

	msg := &chat.Message{
		ID:             uuid.NewString(),
		ConversationID: t.conv.ID,
		Role:           chat.RoleAssistant,
		Content:        truncate(response, config.MaxAssistantMessageLength),
		CreatedAt:      time.Now(),
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	parts := make([]string, 0, len(history)+1)
	for _, m := range history {
		parts = append(parts, m.Content)
	}
	parts = append(parts, msg.Content)
	allContent := strings.Join(parts, "\n")

	if _, _, err := s.context.merge(ctx, t.conv.ID, func(existing chat.ProjectContext) chat.ProjectContext {
		return projectctx.Extract(allContent, msg.Content, existing)
	}); err != nil {
		s.logger.Warn("context update failed", "conversation_id", t.conv.ID, "error", err)
	}

	if extracted := files.Extract(msg.Content); len(extracted) > 0 && s.fileSvc != nil {
		req := &chatSvc.BulkSaveFilesRequest{Files: make([]chatSvc.SaveFileRequest, len(extracted))}
		for i, f := range extracted {
			req.Files[i] = chatSvc.SaveFileRequest{Path: f.Path, Content: f.Content, Language: f.Language}
		}
		if _, err := s.fileSvc.SaveFiles(ctx, t.conv.ID, req); err != nil {
			s.logger.Warn("saving extracted files failed", "conversation_id", t.conv.ID, "error", err)
		}
	}

	return msg, nil
}

// fallback hands the turn to the client's local engine
func (t *turn) fallback(emit chatSvc.EmitFunc, cause error) error {
	t.svc.logger.Warn("cloud backend unavailable, falling back to local engine",
		"conversation_id", t.conv.ID,
		"provider", t.svc.provider.Name(),
		"error", cause,
	)
	t.svc.metrics.ObserveTurn(metrics.OutcomeFallback, time.Since(t.started))
	return emit(chat.NewFallbackEvent(t.userMsg.Content))
}

// fail terminates an open stream with an error event
func (t *turn) fail(emit chatSvc.EmitFunc, message string, cause error) error {
	t.svc.logger.Error(message, "conversation_id", t.conv.ID, "error", cause)
	t.svc.metrics.ObserveTurn(metrics.OutcomeError, time.Since(t.started))
	if err := emit(chat.NewErrorEvent(message)); err != nil {
		return err
	}
	return fmt.Errorf("%s: %w", message, cause)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
