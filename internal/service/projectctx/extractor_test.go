package projectctx

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"webcraft/internal/domain/models/chat"
)

const secureMageResponse = "Here is the navbar for your project:\n```html\n<nav class=\"navbar\"><a href=\"#\">Home</a></nav>\n```\n"

func TestExtractSecureMage(t *testing.T) {
	user := "SecureMage is a cybersecurity monitoring tool"
	all := user + "\n\n" + secureMageResponse

	patch := Extract(all, secureMageResponse, chat.ProjectContext{})

	if patch.ProjectName == nil || *patch.ProjectName != "SecureMage" {
		t.Fatalf("ProjectName = %v, want SecureMage", deref(patch.ProjectName))
	}
	if got := deref(patch.ProjectDescription); got != "a cybersecurity monitoring tool" {
		t.Errorf("ProjectDescription = %q, want %q", got, "a cybersecurity monitoring tool")
	}
	if !contains(patch.FeaturesBuilt, "Navigation") {
		t.Errorf("FeaturesBuilt = %v, want Navigation", patch.FeaturesBuilt)
	}
	if !reflect.DeepEqual(patch.TechStack, []string{"HTML"}) {
		t.Errorf("TechStack = %v, want [HTML]", patch.TechStack)
	}
	wantSummary := "SecureMage - Built with HTML. Features: Navigation"
	if got := deref(patch.ProjectSummary); got != wantSummary {
		t.Errorf("ProjectSummary = %q, want %q", got, wantSummary)
	}
	wantCode := `<nav class="navbar"><a href="#">Home</a></nav>`
	if got := deref(patch.LastCodeGenerated); got != wantCode {
		t.Errorf("LastCodeGenerated = %q, want %q", got, wantCode)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	all := "SecureMage is a cybersecurity monitoring tool\n\n" + secureMageResponse

	conv := &chat.Conversation{}
	first := Extract(all, secureMageResponse, conv.Context())
	if !conv.ApplyContext(first) {
		t.Fatalf("first patch changed nothing")
	}

	second := Extract(all, secureMageResponse, conv.Context())
	if !second.IsEmpty() {
		t.Errorf("second extraction = %+v, want empty patch", second)
	}
	if conv.ApplyContext(second) {
		t.Errorf("second patch changed the conversation")
	}
}

func TestExtractGrowsListsMonotonically(t *testing.T) {
	name := "Acme"
	existing := chat.ProjectContext{
		ProjectName:   &name,
		TechStack:     []string{"React"},
		FeaturesBuilt: []string{"Forms"},
	}
	response := "Added a pricing table and a modal in plain HTML and CSS."

	patch := Extract("", response, existing)

	if want := []string{"React", "HTML", "CSS"}; !reflect.DeepEqual(patch.TechStack, want) {
		t.Errorf("TechStack = %v, want %v", patch.TechStack, want)
	}
	if want := []string{"Forms", "Modals", "Pricing Section"}; !reflect.DeepEqual(patch.FeaturesBuilt, want) {
		t.Errorf("FeaturesBuilt = %v, want %v", patch.FeaturesBuilt, want)
	}
	if patch.ProjectName != nil {
		t.Errorf("ProjectName = %q, want unchanged", *patch.ProjectName)
	}
	want := "Acme - Built with React, HTML, CSS. Features: Forms, Modals, Pricing Section"
	if got := deref(patch.ProjectSummary); got != want {
		t.Errorf("ProjectSummary = %q, want %q", got, want)
	}
}

func TestExtractProjectName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantName string
		wantDesc string
	}{
		{
			name:     "building family",
			text:     "I'm building a TaskFlow dashboard for my team",
			wantName: "TaskFlow",
		},
		{
			name:     "is a family",
			text:     "Quillpad is an app for notes. It syncs.",
			wantName: "Quillpad",
			wantDesc: "an app for notes",
		},
		{
			name:     "two word name",
			text:     "Let's create Pixel Forge website together",
			wantName: "Pixel Forge",
		},
		{
			name:     "will be",
			text:     "Lumen will be a reading tracker",
			wantName: "Lumen",
			wantDesc: "a reading tracker",
		},
		{
			name:     "called family",
			text:     "Make a landing page called Orbit Labs",
			wantName: "Orbit Labs",
		},
		{
			name:     "stopword skipped",
			text:     "This is a simple page",
			wantName: "",
		},
		{
			name:     "tech term is not a name",
			text:     "HTML is a markup language",
			wantName: "",
		},
		{
			name:     "tech term skipped for a later name",
			text:     "React is a library. Acme is a store for plants",
			wantName: "Acme",
			wantDesc: "a store for plants",
		},
		{
			name:     "building a stack app",
			text:     "I'm building a React app",
			wantName: "",
		},
		{
			name:     "node runtime",
			text:     "Node is a runtime",
			wantName: "",
		},
		{
			name:     "no name",
			text:     "make me a todo list",
			wantName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch := Extract(tt.text, "", chat.ProjectContext{})
			if got := deref(patch.ProjectName); got != tt.wantName {
				t.Errorf("ProjectName = %q, want %q", got, tt.wantName)
			}
			if got := deref(patch.ProjectDescription); got != tt.wantDesc {
				t.Errorf("ProjectDescription = %q, want %q", got, tt.wantDesc)
			}
		})
	}
}

func TestExtractKeepsExistingName(t *testing.T) {
	name := "First"
	patch := Extract("Second is a newer idea", "", chat.ProjectContext{ProjectName: &name})
	if patch.ProjectName != nil {
		t.Errorf("ProjectName = %q, want nil", *patch.ProjectName)
	}
}

func TestExtractTruncatesLastCode(t *testing.T) {
	code := strings.Repeat("é", MaxLastCodeLength+500)
	response := "```html\n" + code + "\n```"

	patch := Extract("", response, chat.ProjectContext{})

	got := deref(patch.LastCodeGenerated)
	if n := utf8.RuneCountInString(got); n != MaxLastCodeLength {
		t.Errorf("LastCodeGenerated has %d runes, want %d", n, MaxLastCodeLength)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		project  string
		stack    []string
		features []string
		want     string
	}{
		{
			name: "defaults",
			want: "Project - Built with HTML, CSS, JS. Features: In progress",
		},
		{
			name:     "first three stack, last three features",
			project:  "Nimbus",
			stack:    []string{"HTML", "CSS", "JavaScript", "React"},
			features: []string{"Navigation", "Forms", "Modals", "Dashboard"},
			want:     "Nimbus - Built with HTML, CSS, JavaScript. Features: Forms, Modals, Dashboard",
		},
		{
			name:     "short lists",
			project:  "Nimbus",
			stack:    []string{"React"},
			features: []string{"Forms"},
			want:     "Nimbus - Built with React. Features: Forms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summary(tt.project, tt.stack, tt.features); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
