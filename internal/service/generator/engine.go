package generator

import (
	"fmt"
	"strings"

	"webcraft/internal/domain/models/codegen"
	"webcraft/internal/service/preview"
)

// Engine is the local code generator: it picks the best matching template
// for a prompt and renders it. It performs no I/O and is safe for
// concurrent use since the catalog never changes.
type Engine struct {
	catalog *Catalog
}

// NewEngine creates an engine over an immutable catalog
func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Score counts the template keywords found as substrings of the normalized
// prompt. Substring matching means "form" also matches "platform".
func Score(t Template, normalized string) int {
	score := 0
	for _, kw := range t.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(normalized, strings.ToLower(kw)) {
			score++
		}
	}
	return score
}

// Select returns the highest scoring template and its score. Ties go to the
// template declared first; a zero score selects the default template.
func (e *Engine) Select(prompt string) (Template, int) {
	normalized := Normalize(prompt)

	best, bestScore := -1, 0
	for i, t := range e.catalog.templates {
		if s := Score(t, normalized); s > bestScore {
			best, bestScore = i, s
		}
	}

	if best < 0 {
		return e.catalog.Fallback(), 0
	}
	return e.catalog.templates[best], bestScore
}

// Generate renders the best template for prompt. It never fails.
func (e *Engine) Generate(prompt string) codegen.Result {
	tmpl, score := e.Select(prompt)
	params := ExtractParams(prompt)

	blocks := tmpl.Generate(params)
	if len(blocks) == 0 {
		tmpl = e.catalog.Fallback()
		blocks = tmpl.Generate(params)
	}

	code, language, merged := mergeBlocks(blocks)

	return codegen.Result{
		TemplateID:   tmpl.ID,
		TemplateName: tmpl.Name,
		Language:     language,
		Code:         code,
		Response:     renderResponse(tmpl, params, blocks, code, merged),
		Score:        score,
		Params:       params,
	}
}

// Templates returns catalog metadata in declaration order
func (e *Engine) Templates() []codegen.TemplateInfo {
	return e.catalog.Infos()
}

// mergeBlocks inlines CSS and JS blocks into the first HTML block when both
// kinds are present. Otherwise the first block is returned as-is.
func mergeBlocks(blocks []codegen.CodeBlock) (code, language string, merged bool) {
	var html string
	var css, js []string
	hasHTML := false

	for _, b := range blocks {
		switch normalizeLanguage(b.Language) {
		case "html":
			if !hasHTML {
				html = b.Code
				hasHTML = true
			}
		case "css":
			css = append(css, b.Code)
		case "javascript":
			js = append(js, b.Code)
		}
	}

	if hasHTML && (len(css) > 0 || len(js) > 0) {
		return preview.Compose(html, strings.Join(css, "\n"), strings.Join(js, "\n")), "html", true
	}

	first := blocks[0]
	return first.Code, normalizeLanguage(first.Language), false
}

func normalizeLanguage(lang string) string {
	switch strings.ToLower(lang) {
	case "js", "javascript":
		return "javascript"
	case "htm", "html":
		return "html"
	default:
		return strings.ToLower(lang)
	}
}

func renderResponse(t Template, p codegen.Params, blocks []codegen.CodeBlock, code string, merged bool) string {
	var b strings.Builder

	b.WriteString("Here's a **")
	b.WriteString(t.Name)
	b.WriteString("**")
	if p.Subject != "" {
		b.WriteString(" for ")
		b.WriteString(p.Subject)
	}
	b.WriteString(". ")
	b.WriteString(t.Description)
	b.WriteString("\n\n")

	if merged {
		writeFence(&b, "html", code)
	} else {
		for _, block := range blocks {
			writeFence(&b, normalizeLanguage(block.Language), block.Code)
		}
	}

	switch t.Language {
	case "jsx":
		b.WriteString("Drop the component into your React app and render it from `App`.")
	default:
		b.WriteString("Open the preview to see it live, then ask me to tweak colors, copy or layout.")
	}
	return b.String()
}

func writeFence(b *strings.Builder, lang, code string) {
	fmt.Fprintf(b, "```%s\n%s\n```\n\n", lang, strings.TrimRight(code, "\n"))
}
