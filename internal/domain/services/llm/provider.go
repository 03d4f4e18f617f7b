package llm

import "context"

// Message is one prior conversation message sent to the provider
type Message struct {
	Role    string
	Content string
}

// GenerateRequest describes one completion request
type GenerateRequest struct {
	Model     string
	System    string
	Messages  []Message
	MaxTokens int64
}

// Usage reports token counts for a finished stream
type Usage struct {
	InputTokens  int64
	OutputTokens int64
	StopReason   string
}

// StreamEvent is one element of a provider stream.
// Exactly one of Delta, Error or Done is meaningful; Usage accompanies Done.
type StreamEvent struct {
	Delta string
	Error error
	Done  bool
	Usage *Usage
}

// Provider is a cloud LLM backend that streams plain text
type Provider interface {
	Name() string

	// StreamText starts a streaming completion. The channel is closed after
	// a Done or Error event, or when ctx is cancelled.
	StreamText(ctx context.Context, req *GenerateRequest) (<-chan StreamEvent, error)
}
