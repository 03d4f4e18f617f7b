package chat

import (
	"context"

	"webcraft/internal/domain/models/chat"
)

// AI modes reported by /health
const (
	ModeCloud = "cloud"
	ModeLocal = "local"
)

// EmitFunc delivers one stream event to the client.
// A returned error means the client is gone and the turn should stop.
type EmitFunc func(event chat.StreamEvent) error

// StreamingService runs a chat turn: persist the user message, produce the
// assistant response and keep project memory up to date.
type StreamingService interface {
	// Mode reports whether a cloud backend is configured
	Mode() string

	// StartTurn validates the request and persists the user message.
	// Errors returned here happen before any event is written.
	StartTurn(ctx context.Context, conversationID string, req *CreateMessageRequest) (Turn, error)
}

// Turn is a started chat turn whose response has not been produced yet
type Turn interface {
	UserMessage() *chat.Message

	// Run emits events until a terminal event has been sent or emit fails
	Run(ctx context.Context, emit EmitFunc) error
}
