package chat

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"webcraft/internal/config"
)

var titlePolicy = bluemonday.StrictPolicy()

// titleFromMessage derives a conversation title from the first user message.
// Markup is stripped, whitespace collapsed and the result cut to
// config.AutoTitleLength characters plus "...".
func titleFromMessage(content string) string {
	// StrictPolicy escapes what it keeps; titles are stored as plain text
	text := html.UnescapeString(titlePolicy.Sanitize(content))
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}

	if utf8.RuneCountInString(text) <= config.AutoTitleLength {
		return text
	}
	runes := []rune(text)
	return strings.TrimRight(string(runes[:config.AutoTitleLength]), " ") + "..."
}
