package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	domainllm "webcraft/internal/domain/services/llm"
)

// StreamText streams a completion from Claude as plain text deltas.
// The channel closes after a Done or Error event.
func (p *Provider) StreamText(ctx context.Context, req *domainllm.GenerateRequest) (<-chan domainllm.StreamEvent, error) {
	if !p.SupportsModel(req.Model) {
		return nil, fmt.Errorf("model '%s' is not supported by Anthropic provider", req.Model)
	}

	params, err := buildParams(req)
	if err != nil {
		return nil, err
	}

	// Buffered to prevent blocking
	eventChan := make(chan domainllm.StreamEvent, 16)

	go func() {
		defer close(eventChan)

		stream := p.client.Messages.NewStreaming(ctx, params)
		defer stream.Close()

		usage := &domainllm.Usage{}

		send := func(ev domainllm.StreamEvent) bool {
			select {
			case <-ctx.Done():
				return false
			case eventChan <- ev:
				return true
			}
		}

		for stream.Next() {
			switch e := stream.Current().AsAny().(type) {
			case anthropic.MessageStartEvent:
				usage.InputTokens = e.Message.Usage.InputTokens

			case anthropic.ContentBlockDeltaEvent:
				if e.Delta.Type != "text_delta" || e.Delta.Text == "" {
					continue
				}
				if !send(domainllm.StreamEvent{Delta: e.Delta.Text}) {
					return
				}

			case anthropic.MessageDeltaEvent:
				usage.OutputTokens = e.Usage.OutputTokens
				usage.StopReason = string(e.Delta.StopReason)
			}
		}

		if err := stream.Err(); err != nil {
			send(domainllm.StreamEvent{Error: fmt.Errorf("anthropic streaming error: %w", err)})
			return
		}

		send(domainllm.StreamEvent{Done: true, Usage: usage})
	}()

	return eventChan, nil
}
