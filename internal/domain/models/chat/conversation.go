package chat

import (
	"strings"
	"time"
)

// DefaultConversationTitle is used when a conversation is created without a title.
// Conversations still carrying it get auto-titled from their first user message.
const DefaultConversationTitle = "New Chat"

// Conversation is a chat thread plus the project memory inferred from it
type Conversation struct {
	ID                 string    `json:"id" db:"id"`
	Title              string    `json:"title" db:"title"`
	ProjectName        *string   `json:"projectName,omitempty" db:"project_name"`
	ProjectDescription *string   `json:"projectDescription,omitempty" db:"project_description"`
	TechStack          []string  `json:"techStack" db:"tech_stack"`
	FeaturesBuilt      []string  `json:"featuresBuilt" db:"features_built"`
	ProjectSummary     *string   `json:"projectSummary,omitempty" db:"project_summary"`
	LastCodeGenerated  *string   `json:"lastCodeGenerated,omitempty" db:"last_code_generated"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}

// ConversationWithMessages is the detail view returned by GET /conversations/{id}
type ConversationWithMessages struct {
	Conversation
	Messages []Message `json:"messages"`
}

// Context returns the project memory portion of the conversation
func (c *Conversation) Context() ProjectContext {
	return ProjectContext{
		ProjectName:        c.ProjectName,
		ProjectDescription: c.ProjectDescription,
		TechStack:          c.TechStack,
		FeaturesBuilt:      c.FeaturesBuilt,
		ProjectSummary:     c.ProjectSummary,
		LastCodeGenerated:  c.LastCodeGenerated,
	}
}

// ApplyContext merges a context patch into the conversation.
// techStack and featuresBuilt grow by ordered union, projectName and
// projectDescription are first-wins, summary and last code are replaced.
// Returns true if anything changed.
func (c *Conversation) ApplyContext(patch ProjectContext) bool {
	changed := false

	if name := trimmed(patch.ProjectName); name != "" && isUnset(c.ProjectName) {
		c.ProjectName = &name
		changed = true
	}
	if desc := trimmed(patch.ProjectDescription); desc != "" && isUnset(c.ProjectDescription) {
		c.ProjectDescription = &desc
		changed = true
	}

	if merged, grew := UnionOrdered(c.TechStack, patch.TechStack); grew {
		c.TechStack = merged
		changed = true
	}
	if merged, grew := UnionOrdered(c.FeaturesBuilt, patch.FeaturesBuilt); grew {
		c.FeaturesBuilt = merged
		changed = true
	}

	if patch.ProjectSummary != nil && !equalPtr(c.ProjectSummary, patch.ProjectSummary) {
		summary := *patch.ProjectSummary
		c.ProjectSummary = &summary
		changed = true
	}
	if patch.LastCodeGenerated != nil && !equalPtr(c.LastCodeGenerated, patch.LastCodeGenerated) {
		code := *patch.LastCodeGenerated
		c.LastCodeGenerated = &code
		changed = true
	}

	return changed
}

// UnionOrdered appends the members of add missing from base, keeping
// first-seen order. The second return reports whether base grew.
func UnionOrdered(base, add []string) ([]string, bool) {
	seen := make(map[string]struct{}, len(base)+len(add))
	out := make([]string, 0, len(base)+len(add))
	for _, v := range base {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	before := len(out)
	for _, v := range add {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, len(out) > before
}

// isUnset treats whitespace-only values as missing, matching the extractor
func isUnset(s *string) bool {
	return trimmed(s) == ""
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
