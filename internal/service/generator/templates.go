package generator

import (
	"html"
	"strings"

	"webcraft/internal/domain/models/codegen"
)

// generators binds catalog ids to their render functions
var generators = map[string]GenerateFunc{
	"html-basic":      basicPage,
	"html-landing":    landingPage,
	"html-form":       contactForm,
	"html-login":      loginPage,
	"html-navbar":     navbar,
	"html-dashboard":  dashboard,
	"html-pricing":    pricingTable,
	"html-portfolio":  portfolio,
	"html-terminal":   terminal,
	"html-shop":       shop,
	"css-card":        cardStyles,
	"css-button":      buttonStyles,
	"css-grid":        gridLayout,
	"css-animation":   animations,
	"js-todo":         todoList,
	"js-modal":        modalDialog,
	"js-fetch":        apiFetch,
	"js-counter":      clickCounter,
	"js-theme":        themeToggle,
	"js-timer":        countdownTimer,
	"react-component": reactComponent,
	"react-counter":   reactCounter,
	"react-todo":      reactTodo,
}

// fill substitutes {{key}} placeholders. Values are inserted verbatim.
func fill(tmpl string, kv ...string) string {
	pairs := make([]string, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, "{{"+kv[i]+"}}", kv[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// text returns the HTML-escaped value, or def when value is blank
func text(value, def string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		value = def
	}
	return html.EscapeString(value)
}

// jsxText is text() minus braces, which would open JSX expressions
func jsxText(value, def string) string {
	return strings.NewReplacer("{", "", "}", "").Replace(text(value, def))
}

func htmlBlock(code string) codegen.CodeBlock {
	return codegen.CodeBlock{Language: "html", Code: code}
}

func cssBlock(code string) codegen.CodeBlock {
	return codegen.CodeBlock{Language: "css", Code: code}
}

func jsBlock(code string) codegen.CodeBlock {
	return codegen.CodeBlock{Language: "javascript", Code: code}
}

func jsxBlock(code string) codegen.CodeBlock {
	return codegen.CodeBlock{Language: "jsx", Code: code}
}

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{title}}</title>
</head>
<body>
{{body}}
</body>
</html>`

// page wraps body markup in a full document
func page(title, body string) string {
	return fill(pageShell, "title", title, "body", body)
}

const baseCSS = `* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif; line-height: 1.6; color: #1f2937; background: #f9fafb; }
a { color: inherit; }`

// demo renders a minimal page used to preview CSS and JS snippets
func demo(title, body string) codegen.CodeBlock {
	return htmlBlock(page(title, `  <main class="demo">
    <h1>`+title+`</h1>
`+body+`
  </main>`))
}
