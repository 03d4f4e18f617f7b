package generator

import (
	"reflect"
	"regexp"
	"strings"
	"testing"

	"webcraft/internal/domain/models/codegen"
)

// placeholderRe matches an unfilled {{key}}; JSX style={{ ... }} does not
var placeholderRe = regexp.MustCompile(`\{\{\w+\}\}`)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	catalog, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return NewEngine(catalog)
}

func TestSelect(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name      string
		prompt    string
		wantID    string
		wantScore int
	}{
		{
			name:      "contact form",
			prompt:    "Create a contact form with validation",
			wantID:    "html-form",
			wantScore: 3,
		},
		{
			name:      "empty prompt falls back",
			prompt:    "",
			wantID:    DefaultTemplateID,
			wantScore: 0,
		},
		{
			name:      "no keyword falls back",
			prompt:    "xyzzy plugh",
			wantID:    DefaultTemplateID,
			wantScore: 0,
		},
		{
			name:      "react counter beats plain counter",
			prompt:    "react counter",
			wantID:    "react-counter",
			wantScore: 3,
		},
		{
			name:      "tie goes to first declared",
			prompt:    "a todo list",
			wantID:    "js-todo",
			wantScore: 1,
		},
		{
			name:      "substring match inside a longer word",
			prompt:    "platform",
			wantID:    "html-form",
			wantScore: 1,
		},
		{
			name:      "case and punctuation are ignored",
			prompt:    "CONTACT!!! Form???",
			wantID:    "html-form",
			wantScore: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, score := engine.Select(tt.prompt)
			if got.ID != tt.wantID {
				t.Errorf("Select(%q) id = %s, want %s", tt.prompt, got.ID, tt.wantID)
			}
			if score != tt.wantScore {
				t.Errorf("Select(%q) score = %d, want %d", tt.prompt, score, tt.wantScore)
			}
		})
	}
}

func TestGenerateContactFormScenario(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Generate("Create a contact form with validation")

	if result.TemplateID != "html-form" {
		t.Fatalf("template = %s, want html-form", result.TemplateID)
	}
	if result.Language != "html" {
		t.Errorf("language = %s, want html", result.Language)
	}
	if !strings.Contains(result.Code, `<form id="contactForm">`) {
		t.Errorf("code does not contain the contact form element")
	}

	// CSS and JS are merged into the document
	style := strings.Index(result.Code, "<style>")
	head := strings.Index(result.Code, "</head>")
	if style < 0 || head < 0 || style > head {
		t.Errorf("style block not placed before </head> (style=%d head=%d)", style, head)
	}
	script := strings.LastIndex(result.Code, "<script>")
	body := strings.LastIndex(result.Code, "</body>")
	if script < 0 || body < 0 || script > body {
		t.Errorf("script block not placed before </body> (script=%d body=%d)", script, body)
	}

	if !strings.Contains(result.Response, "```html\n") {
		t.Errorf("response has no html fence")
	}
}

func TestGenerateReactKeepsSingleBlock(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Generate("react counter")

	if result.Language != "jsx" {
		t.Errorf("language = %s, want jsx", result.Language)
	}
	if !strings.Contains(result.Code, "export default function Counter(") {
		t.Errorf("code does not define the default Counter component:\n%s", result.Code)
	}
	if !strings.Contains(result.Response, "```jsx\n") {
		t.Errorf("response has no jsx fence")
	}
}

func TestGenerateUsesTitle(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Generate(`Build a landing page called Nimbus Cloud`)

	if result.TemplateID != "html-landing" {
		t.Fatalf("template = %s, want html-landing", result.TemplateID)
	}
	if result.Params.Title != "Nimbus Cloud" {
		t.Errorf("title param = %q, want %q", result.Params.Title, "Nimbus Cloud")
	}
	if !strings.Contains(result.Code, "Nimbus Cloud") {
		t.Errorf("generated code does not use the title")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	engine := newTestEngine(t)

	prompts := []string{
		"",
		"Create a contact form with validation",
		"dark mode toggle for a blog",
		`a "Pixel Forge" portfolio`,
		"something completely unrelated",
	}

	for _, p := range prompts {
		first := engine.Generate(p)
		second := engine.Generate(p)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Generate(%q) is not deterministic", p)
		}
		if strings.TrimSpace(first.Code) == "" || strings.TrimSpace(first.Response) == "" {
			t.Errorf("Generate(%q) returned empty output", p)
		}
	}
}

func TestEveryTemplateToleratesEmptyParams(t *testing.T) {
	engine := newTestEngine(t)

	for _, tmpl := range engine.catalog.Templates() {
		t.Run(tmpl.ID, func(t *testing.T) {
			blocks := tmpl.Generate(codegen.Params{})
			if len(blocks) == 0 {
				t.Fatalf("no blocks for empty params")
			}
			for i, b := range blocks {
				if strings.TrimSpace(b.Code) == "" {
					t.Errorf("block %d (%s) is empty", i, b.Language)
				}
				if placeholderRe.MatchString(b.Code) {
					t.Errorf("block %d (%s) has an unfilled placeholder", i, b.Language)
				}
			}
			if got := normalizeLanguage(blocks[0].Language); got != tmpl.Language && !(got == "html" && tmpl.Language != "jsx") {
				t.Errorf("first block language %s does not fit template language %s", got, tmpl.Language)
			}
		})
	}
}

func TestPlaceholderPattern(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"<title>{{title}}</title>", true},
		{"<div style={{ textAlign: 'center' }}>", false},
		{"<div style={{color: 'red'}}>", false},
		{"plain", false},
	}

	for _, tt := range tests {
		if got := placeholderRe.MatchString(tt.code); got != tt.want {
			t.Errorf("placeholderRe.MatchString(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestScriptTemplatesRender(t *testing.T) {
	engine := newTestEngine(t)

	for _, id := range []string{"js-todo", "js-modal", "js-fetch", "js-counter", "js-theme", "js-timer"} {
		t.Run(id, func(t *testing.T) {
			tmpl, ok := engine.catalog.Get(id)
			if !ok {
				t.Fatalf("Get(%s) not found", id)
			}
			if tmpl.Generate == nil {
				t.Fatalf("%s has no generator", id)
			}
			var hasScript bool
			for _, b := range tmpl.Generate(codegen.Params{}) {
				if b.Language == "javascript" && strings.TrimSpace(b.Code) != "" {
					hasScript = true
				}
			}
			if !hasScript {
				t.Errorf("%s rendered no javascript block", id)
			}
		})
	}
}

func TestTitlesAreEscaped(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Generate(`a contact form called "<script>alert(1)</script>"`)

	if strings.Contains(result.Code, "<script>alert(1)</script>") {
		t.Errorf("title was inserted without escaping")
	}
}

func TestComponentName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"", "Widget"},
		{"user profile", "UserProfile"},
		{"Nimbus Cloud", "NimbusCloud"},
		{"42 things", "Widget"},
		{"my-card_v2", "MyCardV2"},
	}

	for _, tt := range tests {
		if got := componentName(tt.title, "Widget"); got != tt.want {
			t.Errorf("componentName(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
