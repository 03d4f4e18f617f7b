package llm

import "webcraft/internal/domain/models/chat"

// SystemPromptBuilder renders the system prompt for a conversation.
// The project memory of the conversation is folded into the prompt so the
// model keeps building on earlier turns.
type SystemPromptBuilder interface {
	Build(conv *chat.Conversation) string
}
