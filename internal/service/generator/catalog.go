package generator

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"webcraft/internal/domain/models/codegen"
)

//go:embed catalog.yaml
var catalogFile []byte

// DefaultTemplateID is used when no keyword matches a prompt
const DefaultTemplateID = "html-basic"

// GenerateFunc renders a template. It must tolerate zero-value params.
type GenerateFunc func(p codegen.Params) []codegen.CodeBlock

// Template is a catalog entry: metadata from catalog.yaml bound to its generator
type Template struct {
	codegen.TemplateInfo
	Generate GenerateFunc
}

// Catalog is the immutable, ordered set of templates
type Catalog struct {
	templates []Template
	byID      map[string]int
	fallback  int
}

type catalogDocument struct {
	Templates []codegen.TemplateInfo `yaml:"templates"`
}

// NewCatalog loads the embedded catalog and binds every entry to its generator.
// Every declared template must have a generator and vice versa.
func NewCatalog() (*Catalog, error) {
	return newCatalog(catalogFile, generators)
}

func newCatalog(data []byte, funcs map[string]GenerateFunc) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if len(doc.Templates) == 0 {
		return nil, fmt.Errorf("catalog declares no templates")
	}

	c := &Catalog{
		templates: make([]Template, 0, len(doc.Templates)),
		byID:      make(map[string]int, len(doc.Templates)),
		fallback:  -1,
	}

	for _, info := range doc.Templates {
		if info.ID == "" {
			return nil, fmt.Errorf("catalog entry %q has no id", info.Name)
		}
		if _, dup := c.byID[info.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %s", info.ID)
		}
		fn, ok := funcs[info.ID]
		if !ok {
			return nil, fmt.Errorf("template %s has no generator", info.ID)
		}

		c.byID[info.ID] = len(c.templates)
		c.templates = append(c.templates, Template{TemplateInfo: info, Generate: fn})
	}

	for id := range funcs {
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("generator %s is not declared in catalog", id)
		}
	}

	idx, ok := c.byID[DefaultTemplateID]
	if !ok {
		return nil, fmt.Errorf("default template %s missing from catalog", DefaultTemplateID)
	}
	c.fallback = idx

	return c, nil
}

// Templates returns the templates in declaration order
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Get returns a template by ID
func (c *Catalog) Get(id string) (Template, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Template{}, false
	}
	return c.templates[idx], true
}

// Fallback returns the default template
func (c *Catalog) Fallback() Template {
	return c.templates[c.fallback]
}

// Infos returns the public metadata of all templates in declaration order
func (c *Catalog) Infos() []codegen.TemplateInfo {
	out := make([]codegen.TemplateInfo, len(c.templates))
	for i, t := range c.templates {
		out[i] = t.TemplateInfo
	}
	return out
}
