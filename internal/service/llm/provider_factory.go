package llm

import (
	"fmt"
	"strings"

	"webcraft/internal/config"
	domainllm "webcraft/internal/domain/services/llm"
	"webcraft/internal/service/llm/providers/anthropic"
)

// ProviderFactory creates the cloud provider selected by configuration
type ProviderFactory struct {
	config *config.Config
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(cfg *config.Config) *ProviderFactory {
	return &ProviderFactory{
		config: cfg,
	}
}

// GetProvider returns the cloud provider, or nil when no credentials are
// configured. A nil provider is the normal local-engine mode, not an error.
func (f *ProviderFactory) GetProvider() (domainllm.Provider, error) {
	if f.config.AIMode() != config.AIModeCloud {
		return nil, nil
	}

	switch inferProvider(f.config.DefaultModel) {
	case "anthropic":
		provider, err := anthropic.NewProvider(f.config.AnthropicAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create Anthropic provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unsupported model: %s", f.config.DefaultModel)
	}
}

// inferProvider infers the provider from model name prefix
func inferProvider(model string) string {
	if strings.HasPrefix(strings.ToLower(model), "claude-") {
		return "anthropic"
	}
	return ""
}
