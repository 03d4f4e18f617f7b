// Package chat implements conversations, project files and chat turns.
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
	chatRepo "webcraft/internal/domain/repositories/chat"
	chatSvc "webcraft/internal/domain/services/chat"
	"webcraft/internal/metrics"
)

// conversationService implements the ConversationService interface
type conversationService struct {
	convRepo chatRepo.ConversationRepository
	msgRepo  chatRepo.MessageRepository
	context  *contextWriter
	logger   *slog.Logger
}

// NewConversationService creates a new conversation service.
// locks must be shared with the streaming service so that client-side and
// server-side context updates of one conversation are serialized.
func NewConversationService(
	convRepo chatRepo.ConversationRepository,
	msgRepo chatRepo.MessageRepository,
	locks *KeyedMutex,
	m *metrics.Metrics,
	logger *slog.Logger,
) chatSvc.ConversationService {
	return &conversationService{
		convRepo: convRepo,
		msgRepo:  msgRepo,
		context: &contextWriter{
			convRepo: convRepo,
			locks:    locks,
			metrics:  m,
			logger:   logger,
		},
		logger: logger,
	}
}

// CreateConversation creates a new conversation
func (s *conversationService) CreateConversation(ctx context.Context, req *chatSvc.CreateConversationRequest) (*chat.Conversation, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		req.Title = chat.DefaultConversationTitle
	}

	if err := validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, config.MaxConversationTitleLength)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	conv := &chat.Conversation{
		ID:            uuid.NewString(),
		Title:         req.Title,
		TechStack:     []string{},
		FeaturesBuilt: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.convRepo.Create(ctx, conv); err != nil {
		return nil, err
	}

	s.logger.Info("conversation created", "id", conv.ID, "title", conv.Title)

	return conv, nil
}

// GetConversation retrieves a conversation with its messages in order
func (s *conversationService) GetConversation(ctx context.Context, id string) (*chat.ConversationWithMessages, error) {
	conv, err := s.convRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	messages, err := s.msgRepo.ListByConversation(ctx, id)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []chat.Message{}
	}

	return &chat.ConversationWithMessages{Conversation: *conv, Messages: messages}, nil
}

// ListConversations retrieves all conversations
func (s *conversationService) ListConversations(ctx context.Context) ([]chat.Conversation, error) {
	convs, err := s.convRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if convs == nil {
		convs = []chat.Conversation{}
	}
	return convs, nil
}

// DeleteConversation deletes a conversation; messages and files cascade
func (s *conversationService) DeleteConversation(ctx context.Context, id string) error {
	if err := s.convRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("conversation deleted", "id", id)

	return nil
}

// UpdateContext merges a client-supplied context patch
func (s *conversationService) UpdateContext(ctx context.Context, id string, patch chat.ProjectContext) (*chat.Conversation, error) {
	if err := validateContextPatch(&patch); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	conv, _, err := s.context.merge(ctx, id, func(chat.ProjectContext) chat.ProjectContext {
		return patch
	})
	if err != nil {
		return nil, err
	}

	return conv, nil
}

// AddAssistantMessage persists a response generated by the client's local engine
func (s *conversationService) AddAssistantMessage(ctx context.Context, id string, req *chatSvc.CreateMessageRequest) (*chat.Message, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Content,
			validation.Required,
			validation.Length(1, config.MaxAssistantMessageLength),
			validation.By(notBlank),
		),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.convRepo.Get(ctx, id); err != nil {
		return nil, err
	}

	msg := &chat.Message{
		ID:             uuid.NewString(),
		ConversationID: id,
		Role:           chat.RoleAssistant,
		Content:        req.Content,
		CreatedAt:      time.Now(),
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Debug("assistant message saved", "conversation_id", id, "message_id", msg.ID, "seq", msg.Seq)

	return msg, nil
}

// validateContextPatch bounds the fields a client may write into project memory
func validateContextPatch(p *chat.ProjectContext) error {
	label := validation.Each(validation.Required, validation.Length(1, config.MaxContextLabelLength))

	return validation.ValidateStruct(p,
		validation.Field(&p.ProjectName, validation.Length(0, config.MaxProjectNameLength)),
		validation.Field(&p.ProjectDescription, validation.Length(0, config.MaxProjectDescriptionLength)),
		validation.Field(&p.TechStack, validation.Length(0, config.MaxContextListItems), label),
		validation.Field(&p.FeaturesBuilt, validation.Length(0, config.MaxContextListItems), label),
		validation.Field(&p.ProjectSummary, validation.Length(0, config.MaxProjectSummaryLength)),
		validation.Field(&p.LastCodeGenerated, validation.Length(0, config.MaxLastCodeLength)),
	)
}

// notBlank rejects strings made only of whitespace
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}
