package llm

import (
	"strings"

	"webcraft/internal/domain/models/chat"
	domainllm "webcraft/internal/domain/services/llm"
)

// DefaultSystemPrompt instructs the model to answer with previewable web code
const DefaultSystemPrompt = `You are a web development assistant. Answer with working HTML, CSS, JavaScript or React code.
Put each language in its own fenced code block (html, css, javascript or jsx).
When the answer spans several files, start each one with a line "--- FILE: path ---".
Prefer a single self-contained index.html when possible so it can be previewed directly.`

// systemPromptBuilder combines the base prompt with the conversation's project memory
type systemPromptBuilder struct {
	base string
}

// NewSystemPromptBuilder creates a builder. An empty base uses DefaultSystemPrompt.
func NewSystemPromptBuilder(base string) domainllm.SystemPromptBuilder {
	if strings.TrimSpace(base) == "" {
		base = DefaultSystemPrompt
	}
	return &systemPromptBuilder{base: base}
}

// Build appends what is known about the project, if anything
func (b *systemPromptBuilder) Build(conv *chat.Conversation) string {
	if conv == nil {
		return b.base
	}

	var parts []string
	if conv.ProjectName != nil && *conv.ProjectName != "" {
		parts = append(parts, "Project: "+*conv.ProjectName)
	}
	if conv.ProjectDescription != nil && *conv.ProjectDescription != "" {
		parts = append(parts, "Description: "+*conv.ProjectDescription)
	}
	if len(conv.TechStack) > 0 {
		parts = append(parts, "Tech stack: "+strings.Join(conv.TechStack, ", "))
	}
	if len(conv.FeaturesBuilt) > 0 {
		parts = append(parts, "Features built so far: "+strings.Join(conv.FeaturesBuilt, ", "))
	}
	if conv.LastCodeGenerated != nil && *conv.LastCodeGenerated != "" {
		parts = append(parts, "Most recent HTML:\n```html\n"+*conv.LastCodeGenerated+"\n```")
	}

	if len(parts) == 0 {
		return b.base
	}
	return b.base + "\n\nWhat has been built in this conversation:\n" + strings.Join(parts, "\n")
}
