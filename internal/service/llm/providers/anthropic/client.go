package anthropic

import (
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	domainllm "webcraft/internal/domain/services/llm"
)

// DefaultMaxTokens is used when a request does not set MaxTokens
const DefaultMaxTokens = 4096

// Provider streams completions from Anthropic (Claude) models.
type Provider struct {
	client *anthropic.Client
}

// NewProvider creates a new Anthropic provider with the given API key.
// Extra request options (base URL, HTTP client) are mostly useful in tests.
func NewProvider(apiKey string, opts ...option.RequestOption) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &Provider{
		client: &client,
	}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "anthropic"
}

// SupportsModel returns true if this provider supports the given model.
// Anthropic models start with "claude-"
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "claude-")
}

// buildParams converts a domain request to Anthropic message parameters
func buildParams(req *domainllm.GenerateRequest) (anthropic.MessageNewParams, error) {
	messages, err := convertMessages(req.Messages)
	if err != nil {
		return anthropic.MessageNewParams{}, fmt.Errorf("failed to convert messages: %w", err)
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		Messages:  messages,
		MaxTokens: maxTokens,
	}

	if req.System != "" {
		params.System = []anthropic.TextBlockParam{
			{
				Type: "text",
				Text: req.System,
			},
		}
	}

	return params, nil
}

// convertMessages converts domain messages to Anthropic SDK format.
// Consecutive messages with the same role are merged since the API
// expects alternating turns; empty messages are dropped.
func convertMessages(messages []domainllm.Message) ([]anthropic.MessageParam, error) {
	type turn struct {
		role string
		text []string
	}

	var turns []turn
	for i, msg := range messages {
		if msg.Role != "user" && msg.Role != "assistant" {
			return nil, fmt.Errorf("message %d: unsupported role '%s'", i, msg.Role)
		}
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}
		if n := len(turns); n > 0 && turns[n-1].role == msg.Role {
			turns[n-1].text = append(turns[n-1].text, msg.Content)
			continue
		}
		turns = append(turns, turn{role: msg.Role, text: []string{msg.Content}})
	}

	if len(turns) == 0 {
		return nil, fmt.Errorf("no messages to send")
	}
	if turns[0].role != "user" {
		return nil, fmt.Errorf("first message must come from the user")
	}

	result := make([]anthropic.MessageParam, 0, len(turns))
	for _, t := range turns {
		block := anthropic.NewTextBlock(strings.Join(t.text, "\n\n"))
		if t.role == "user" {
			result = append(result, anthropic.NewUserMessage(block))
		} else {
			result = append(result, anthropic.NewAssistantMessage(block))
		}
	}

	return result, nil
}
