package codegen

// CodeBlock is one fenced block of generated source
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// Params are the values extracted from a prompt and passed to a template.
// Every field may be empty; templates supply their own defaults.
type Params struct {
	Title   string `json:"title,omitempty"`
	Subject string `json:"subject,omitempty"`
}

// TemplateInfo is the public metadata of a catalog template
type TemplateInfo struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Language    string   `json:"language" yaml:"language"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
}

// Result is the output of the local engine for one prompt
type Result struct {
	TemplateID   string `json:"templateId"`
	TemplateName string `json:"templateName"`
	Language     string `json:"language"`
	Code         string `json:"code"`
	Response     string `json:"response"`
	Score        int    `json:"score"`
	Params       Params `json:"params"`
}
