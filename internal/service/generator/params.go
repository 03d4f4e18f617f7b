package generator

import (
	"regexp"
	"strings"

	"webcraft/internal/domain/models/codegen"
)

var (
	doubleQuotedRe = regexp.MustCompile(`["“]([^"”\n]{2,60})["”]`)
	singleQuotedRe = regexp.MustCompile(`(?:^|\s)'([^'\n]{2,60})'(?:\s|$|[.,!?;:])`)
	calledRe       = regexp.MustCompile(`\b(?:called|named|titled)\s+([A-Z][\w-]*(?:\s+[A-Z][\w-]*){0,4})`)
	subjectRe      = regexp.MustCompile(`(?i)\bfor\s+(?:a|an|the|my|our)\s+([a-z][a-z0-9 -]{1,40}?)(?:[.,!?;:]|\s+(?:with|that|which|using|and|in|to)\b|$)`)
	tokenRe        = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
)

// ExtractParams pulls template parameters out of a prompt.
// The title comes from a quoted string or from "called/named X";
// the subject from "for a/an/the X". Missing values stay empty.
func ExtractParams(prompt string) codegen.Params {
	var p codegen.Params

	if m := doubleQuotedRe.FindStringSubmatch(prompt); m != nil {
		p.Title = strings.TrimSpace(m[1])
	} else if m := singleQuotedRe.FindStringSubmatch(prompt); m != nil {
		p.Title = strings.TrimSpace(m[1])
	} else if m := calledRe.FindStringSubmatch(prompt); m != nil {
		p.Title = strings.TrimSpace(m[1])
	}

	if m := subjectRe.FindStringSubmatch(prompt); m != nil {
		p.Subject = strings.TrimSpace(m[1])
	}

	return p
}

// Normalize lowercases the prompt and re-joins its word tokens with single spaces
func Normalize(prompt string) string {
	fields := tokenRe.Split(strings.ToLower(prompt), -1)
	tokens := fields[:0]
	for _, f := range fields {
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return strings.Join(tokens, " ")
}
