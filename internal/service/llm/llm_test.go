package llm

import (
	"strings"
	"testing"

	"webcraft/internal/config"
	"webcraft/internal/domain/models/chat"
)

func TestSystemPromptBuilder(t *testing.T) {
	name := "SecureMage"
	code := "<nav></nav>"

	tests := []struct {
		name     string
		base     string
		conv     *chat.Conversation
		contains []string
		exact    string
	}{
		{name: "default base", conv: nil, exact: DefaultSystemPrompt},
		{name: "custom base without memory", base: "Be brief.", conv: &chat.Conversation{}, exact: "Be brief."},
		{
			name: "memory appended",
			base: "Be brief.",
			conv: &chat.Conversation{
				ProjectName:       &name,
				TechStack:         []string{"HTML", "CSS"},
				FeaturesBuilt:     []string{"Navigation"},
				LastCodeGenerated: &code,
			},
			contains: []string{
				"Be brief.\n\nWhat has been built in this conversation:",
				"Project: SecureMage",
				"Tech stack: HTML, CSS",
				"Features built so far: Navigation",
				"```html\n<nav></nav>\n```",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSystemPromptBuilder(tt.base).Build(tt.conv)
			if tt.exact != "" && got != tt.exact {
				t.Errorf("Build() = %q, want %q", got, tt.exact)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Build() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestProviderFactory(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantNil bool
		wantErr bool
	}{
		{name: "local mode", cfg: config.Config{DefaultModel: "claude-haiku-4-5-20251001"}, wantNil: true},
		{name: "anthropic", cfg: config.Config{AnthropicAPIKey: "sk-test", DefaultModel: "claude-sonnet-4-5"}},
		{name: "unknown model", cfg: config.Config{AnthropicAPIKey: "sk-test", DefaultModel: "gpt-4o"}, wantNil: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProviderFactory(&tt.cfg).GetProvider()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if (provider == nil) != tt.wantNil {
				t.Errorf("GetProvider() = %v, wantNil %v", provider, tt.wantNil)
			}
			if provider != nil && provider.Name() != "anthropic" {
				t.Errorf("Name() = %q", provider.Name())
			}
		})
	}
}
