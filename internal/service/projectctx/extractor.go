// Package projectctx infers a conversation's project memory (name, stack,
// features) from its text. Extraction is pure and best-effort: a rule that
// does not match simply contributes nothing to the patch.
package projectctx

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"webcraft/internal/config"
	"webcraft/internal/domain/models/chat"
)

// MaxLastCodeLength bounds the stored copy of the latest HTML block
const MaxLastCodeLength = config.MaxLastCodeLength

// Summary defaults used when the context has no value yet
const (
	DefaultProjectName = "Project"
	DefaultFeatures    = "In progress"
)

// DefaultTechStack is reported in the summary before any stack is detected
var DefaultTechStack = []string{"HTML", "CSS", "JS"}

var (
	buildingNameRe = regexp.MustCompile(`(?i:\b(?:building|build|creating|create|making|make|developing|develop))\s+(?:(?i:an?)\s+)?["'“]?([A-Z][\w-]*(?:\s+[A-Z][\w-]*)?)["'”]?\s+(?i:app|application|website|site|dashboard|platform|tool|system)\b`)
	isNameRe       = regexp.MustCompile(`\b([A-Z][\w-]*)["'”]?\s+(?:(?i:is)\s+((?i:an?))|(?i:will)\s+(?i:be))\b([^.!?\n]*)`)
	calledNameRe   = regexp.MustCompile(`(?i:\b(?:called|named))\s+["'“]?([A-Z][\w-]*(?:\s+[A-Z][\w-]*)?)`)
	htmlFenceRe    = regexp.MustCompile("(?s)```html[^\\n]*\\n(.*?)```")
)

// stopwords are capitalized sentence starters that are never project names
var stopwords = map[string]struct{}{
	"This": {}, "It": {}, "That": {}, "Here": {}, "There": {}, "What": {},
	"Which": {}, "Each": {}, "Every": {}, "Our": {}, "Your": {}, "The": {},
}

type label struct {
	name    string
	pattern *regexp.Regexp
}

// techVocabulary is scanned against the latest response, in this order
var techVocabulary = []label{
	{"HTML", regexp.MustCompile(`(?i)\bhtml\b`)},
	{"CSS", regexp.MustCompile(`(?i)\bcss\b`)},
	{"JavaScript", regexp.MustCompile(`(?i)\bjavascript\b`)},
	{"React", regexp.MustCompile(`(?i)\breact\b`)},
	{"TypeScript", regexp.MustCompile(`(?i)\btypescript\b`)},
	{"Node.js", regexp.MustCompile(`(?i)\bnode\.?js\b`)},
	{"Express", regexp.MustCompile(`(?i)\bexpress\b`)},
	{"Tailwind", regexp.MustCompile(`(?i)\btailwind`)},
	{"Bootstrap", regexp.MustCompile(`(?i)\bbootstrap\b`)},
}

// featureTable maps markup and wording in a response to feature labels
var featureTable = []label{
	{"Navigation", regexp.MustCompile(`(?i)<nav|navbar|navigation`)},
	{"Forms", regexp.MustCompile(`(?i)<form|\bform\b`)},
	{"Dashboard", regexp.MustCompile(`(?i)dashboard`)},
	{"Charts/Analytics", regexp.MustCompile(`(?i)\bchart|\bgraph`)},
	{"Modals", regexp.MustCompile(`(?i)modal|dialog`)},
	{"Shopping Cart", regexp.MustCompile(`(?i)\bcart\b|checkout`)},
	{"Hero Section", regexp.MustCompile(`(?i)\bhero\b|landing`)},
	{"Pricing Section", regexp.MustCompile(`(?i)pricing`)},
	{"Terminal Display", regexp.MustCompile(`(?i)terminal|console`)},
	{"Settings Panel", regexp.MustCompile(`(?i)settings|preferences`)},
}

// Extract computes the sparse context patch for one turn.
// allContent is every message of the conversation joined together,
// latestResponse the newest assistant message and existing the persisted
// context. The returned patch only carries fields that change.
func Extract(allContent, latestResponse string, existing chat.ProjectContext) chat.ProjectContext {
	var patch chat.ProjectContext

	nameChanged := false
	if isBlank(existing.ProjectName) {
		if name, desc, ok := findProjectName(allContent); ok {
			patch.ProjectName = &name
			nameChanged = true
			if desc != "" && isBlank(existing.ProjectDescription) {
				patch.ProjectDescription = &desc
			}
		}
	}

	stack := existing.TechStack
	if found := matchLabels(techVocabulary, latestResponse); len(found) > 0 {
		if merged, grew := chat.UnionOrdered(existing.TechStack, found); grew {
			patch.TechStack = merged
			stack = merged
		}
	}

	features := existing.FeaturesBuilt
	featuresChanged := false
	if found := matchLabels(featureTable, latestResponse); len(found) > 0 {
		if merged, grew := chat.UnionOrdered(existing.FeaturesBuilt, found); grew {
			patch.FeaturesBuilt = merged
			features = merged
			featuresChanged = true
		}
	}

	if nameChanged || featuresChanged {
		name := DefaultProjectName
		if patch.ProjectName != nil {
			name = *patch.ProjectName
		} else if !isBlank(existing.ProjectName) {
			name = *existing.ProjectName
		}
		summary := Summary(name, stack, features)
		patch.ProjectSummary = &summary
	}

	if code, ok := lastHTMLBlock(latestResponse); ok {
		if existing.LastCodeGenerated == nil || *existing.LastCodeGenerated != code {
			patch.LastCodeGenerated = &code
		}
	}

	return patch
}

// Summary renders "{name} - Built with {first 3 stack}. Features: {last 3 features}"
func Summary(name string, stack, features []string) string {
	if strings.TrimSpace(name) == "" {
		name = DefaultProjectName
	}

	tech := DefaultTechStack
	if len(stack) > 0 {
		tech = stack[:min(3, len(stack))]
	}

	built := DefaultFeatures
	if len(features) > 0 {
		built = strings.Join(features[max(0, len(features)-3):], ", ")
	}

	return name + " - Built with " + strings.Join(tech, ", ") + ". Features: " + built
}

// findProjectName tries the three name families in priority order.
// The "X is a ..." family also yields the rest of the sentence as a description.
func findProjectName(text string) (name, description string, ok bool) {
	if name, ok := firstName(buildingNameRe, text); ok {
		return name, "", true
	}

	for _, m := range isNameRe.FindAllStringSubmatch(text, -1) {
		if isStopword(m[1]) {
			continue
		}
		desc := strings.TrimSpace(m[2] + m[3])
		if desc == m[2] {
			desc = ""
		}
		return m[1], desc, true
	}

	if name, ok := firstName(calledNameRe, text); ok {
		return name, "", true
	}
	return "", "", false
}

func firstName(re *regexp.Regexp, text string) (string, bool) {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" || isStopword(name) {
			continue
		}
		return name, true
	}
	return "", false
}

// isStopword also rejects tech stack labels so "HTML is a markup language"
// cannot claim the project name
func isStopword(name string) bool {
	first, _, _ := strings.Cut(name, " ")
	if _, ok := stopwords[first]; ok {
		return true
	}
	for _, l := range techVocabulary {
		if strings.EqualFold(first, l.name) || strings.EqualFold(first, strings.TrimSuffix(l.name, ".js")) {
			return true
		}
	}
	return false
}

func matchLabels(table []label, text string) []string {
	if text == "" {
		return nil
	}
	var found []string
	for _, l := range table {
		if l.pattern.MatchString(text) {
			found = append(found, l.name)
		}
	}
	return found
}

// lastHTMLBlock returns the first ```html block, truncated to MaxLastCodeLength characters
func lastHTMLBlock(response string) (string, bool) {
	m := htmlFenceRe.FindStringSubmatch(response)
	if m == nil {
		return "", false
	}
	code := strings.TrimRight(m[1], "\n")
	if code == "" {
		return "", false
	}
	return truncateRunes(code, MaxLastCodeLength), true
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
