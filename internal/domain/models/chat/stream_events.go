package chat

import (
	"encoding/json"
	"fmt"
)

// StreamEventType discriminates the events of a message stream.
// Valid sequences: chunk* done | fallback | chunk* error
type StreamEventType string

const (
	StreamEventChunk    StreamEventType = "chunk"    // Incremental assistant text
	StreamEventFallback StreamEventType = "fallback" // Client must run the local engine (terminal)
	StreamEventDone     StreamEventType = "done"     // Assistant message persisted (terminal)
	StreamEventError    StreamEventType = "error"    // Stream failed after it was opened (terminal)
)

// StreamEvent is the tagged union sent as the SSE data payload.
// The legacy fields (content, useLocalEngine, done, error) are kept so
// older clients that switch on field presence keep working.
type StreamEvent struct {
	Type StreamEventType `json:"type"`

	// chunk
	Content string `json:"content,omitempty"`

	// fallback
	UseLocalEngine bool   `json:"useLocalEngine,omitempty"`
	UserMessage    string `json:"userMessage,omitempty"`

	// done
	Done      bool   `json:"done,omitempty"`
	MessageID string `json:"messageId,omitempty"`

	// error
	Error string `json:"error,omitempty"`
}

// IsTerminal reports whether no further events follow this one
func (e StreamEvent) IsTerminal() bool {
	return e.Type != StreamEventChunk
}

// NewChunkEvent creates a chunk event
func NewChunkEvent(content string) StreamEvent {
	return StreamEvent{Type: StreamEventChunk, Content: content}
}

// NewFallbackEvent creates the local engine signal
func NewFallbackEvent(userMessage string) StreamEvent {
	return StreamEvent{Type: StreamEventFallback, UseLocalEngine: true, UserMessage: userMessage}
}

// NewDoneEvent creates the completion event
func NewDoneEvent(messageID string) StreamEvent {
	return StreamEvent{Type: StreamEventDone, Done: true, MessageID: messageID}
}

// NewErrorEvent creates an error event
func NewErrorEvent(msg string) StreamEvent {
	return StreamEvent{Type: StreamEventError, Error: msg}
}

// FormatSSE formats an event for transmission:
//
//	event: chunk
//	data: {"type":"chunk","content":"..."}
func FormatSSE(event StreamEvent) (string, error) {
	jsonData, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to marshal SSE event data: %w", err)
	}

	return fmt.Sprintf("event: %s\ndata: %s\n\n", event.Type, jsonData), nil
}

// ParseStreamEvent decodes a data payload. Events from older servers
// without a type field are classified by the legacy field that is set.
func ParseStreamEvent(data []byte) (StreamEvent, error) {
	var event StreamEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return StreamEvent{}, fmt.Errorf("decode stream event: %w", err)
	}

	if event.Type == "" {
		switch {
		case event.UseLocalEngine:
			event.Type = StreamEventFallback
		case event.Done:
			event.Type = StreamEventDone
		case event.Error != "":
			event.Type = StreamEventError
		default:
			event.Type = StreamEventChunk
		}
	}

	return event, nil
}
