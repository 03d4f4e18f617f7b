package client

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"webcraft/internal/domain/models/chat"
	chatSvc "webcraft/internal/domain/services/chat"
	"webcraft/internal/service/files"
	"webcraft/internal/service/projectctx"
)

// Response sources
const (
	SourceCloud = "cloud"
	SourceLocal = "local"
)

// TurnResult is the outcome of one chat turn
type TurnResult struct {
	UserMessage  string                         `json:"userMessage"`
	Response     string                         `json:"response"`
	Source       string                         `json:"source"`
	TemplateID   string                         `json:"templateId,omitempty"`
	Conversation *chat.ConversationWithMessages `json:"conversation,omitempty"`
}

// Send posts a user message and follows the response stream. onUpdate
// receives the full response text so far after every change and may be nil.
//
// The local engine answers when the server signals fallback, when the stream
// fails, or when the server cannot be reached. Client errors (4xx) are
// returned as *APIError.
func (c *Client) Send(ctx context.Context, conversationID, content string, onUpdate func(string)) (*TurnResult, error) {
	if onUpdate == nil {
		onUpdate = func(string) {}
	}

	resp, err := c.send(ctx, http.MethodPost, "/conversations/"+conversationID+"/messages",
		chatSvc.CreateMessageRequest{Content: content})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("message request failed, using local engine", "error", err)
		return c.runLocal(ctx, conversationID, content, onUpdate)
	}
	defer resp.Body.Close()

	var (
		text     strings.Builder
		terminal chat.StreamEvent
	)
	readErr := readEvents(resp.Body, func(ev chat.StreamEvent) bool {
		if ev.Type == chat.StreamEventChunk {
			text.WriteString(ev.Content)
			onUpdate(text.String())
			return true
		}
		terminal = ev
		return false
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	switch {
	case readErr == nil && terminal.Type == chat.StreamEventDone:
		return c.finishCloud(ctx, conversationID, content, text.String()), nil
	case readErr == nil && terminal.Type == chat.StreamEventFallback:
		prompt := terminal.UserMessage
		if prompt == "" {
			prompt = content
		}
		return c.runLocal(ctx, conversationID, prompt, onUpdate)
	default:
		c.logger.Warn("stream failed, using local engine",
			"conversation_id", conversationID,
			"read_error", readErr,
			"event_error", terminal.Error,
		)
		return c.runLocal(ctx, conversationID, content, onUpdate)
	}
}

// finishCloud reloads the conversation; the stored assistant message is
// authoritative over the text accumulated from chunks
func (c *Client) finishCloud(ctx context.Context, conversationID, content, streamed string) *TurnResult {
	result := &TurnResult{UserMessage: content, Response: streamed, Source: SourceCloud}

	conv, err := c.GetConversation(ctx, conversationID)
	if err != nil {
		c.logger.Warn("reload after stream failed", "conversation_id", conversationID, "error", err)
		return result
	}
	result.Conversation = conv
	if last := lastAssistant(conv.Messages); last != nil {
		result.Response = last.Content
	}
	return result
}

// runLocal generates the response on this side, reveals it progressively and
// persists it with its context and files. Persistence is best-effort.
func (c *Client) runLocal(ctx context.Context, conversationID, prompt string, onUpdate func(string)) (*TurnResult, error) {
	gen := c.generator.Generate(prompt)

	if err := Reveal(ctx, gen.Response, c.revealStep, c.revealInterval, onUpdate); err != nil {
		return nil, err
	}

	result := &TurnResult{
		UserMessage: prompt,
		Response:    gen.Response,
		Source:      SourceLocal,
		TemplateID:  gen.TemplateID,
	}

	if _, err := c.AddAssistantMessage(ctx, conversationID, gen.Response); err != nil {
		c.logger.Warn("saving local response failed", "conversation_id", conversationID, "error", err)
		return result, nil
	}

	conv, err := c.GetConversation(ctx, conversationID)
	if err != nil {
		c.logger.Warn("loading conversation failed", "conversation_id", conversationID, "error", err)
		return result, nil
	}

	patch := projectctx.Extract(joinContents(conv.Messages), gen.Response, conv.Context())
	if !patch.IsEmpty() {
		if _, err := c.UpdateContext(ctx, conversationID, patch); err != nil {
			c.logger.Warn("context update failed", "conversation_id", conversationID, "error", err)
		}
	}

	if extracted := files.Extract(gen.Response); len(extracted) > 0 {
		if _, err := c.SaveFiles(ctx, conversationID, extracted); err != nil {
			c.logger.Warn("saving files failed", "conversation_id", conversationID, "error", err)
		}
	}

	if conv, err = c.GetConversation(ctx, conversationID); err == nil {
		result.Conversation = conv
	}
	return result, nil
}

func joinContents(messages []chat.Message) string {
	parts := make([]string, len(messages))
	for i, m := range messages {
		parts[i] = m.Content
	}
	return strings.Join(parts, "\n")
}

func lastAssistant(messages []chat.Message) *chat.Message {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == chat.RoleAssistant {
			return &messages[i]
		}
	}
	return nil
}
