package chat

import (
	"context"

	"webcraft/internal/domain/models/chat"
)

// ConversationService defines conversation CRUD and project memory updates
type ConversationService interface {
	// CreateConversation creates a conversation; an empty title becomes "New Chat"
	CreateConversation(ctx context.Context, req *CreateConversationRequest) (*chat.Conversation, error)

	// GetConversation returns the conversation with its messages in order
	GetConversation(ctx context.Context, id string) (*chat.ConversationWithMessages, error)

	// ListConversations returns all conversations without messages
	ListConversations(ctx context.Context) ([]chat.Conversation, error)

	// DeleteConversation removes a conversation with its messages and files
	DeleteConversation(ctx context.Context, id string) error

	// UpdateContext merges a partial project context into the conversation.
	// An empty patch returns the conversation without writing.
	UpdateContext(ctx context.Context, id string, patch chat.ProjectContext) (*chat.Conversation, error)

	// AddAssistantMessage persists an assistant message produced by the client-side local engine
	AddAssistantMessage(ctx context.Context, id string, req *CreateMessageRequest) (*chat.Message, error)
}

// CreateConversationRequest is the DTO for POST /conversations
type CreateConversationRequest struct {
	Title string `json:"title"`
}

// CreateMessageRequest is the DTO for posting message content
type CreateMessageRequest struct {
	Content string `json:"content"`
}
