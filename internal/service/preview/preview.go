// Package preview assembles HTML, CSS and JS sources into a single
// document that can be rendered in a sandboxed frame.
package preview

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

var (
	doctypeRe   = regexp.MustCompile(`(?i)<!doctype`)
	htmlOpenRe  = regexp.MustCompile(`(?i)<html[\s>]`)
	headCloseRe = regexp.MustCompile(`(?i)</head\s*>`)
	bodyOpenRe  = regexp.MustCompile(`(?i)<body(?:\s[^>]*)?>`)
	bodyCloseRe = regexp.MustCompile(`(?i)</body\s*>`)
)

const boilerplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Preview</title>
</head>
<body>
%s
</body>
</html>`

// File is the minimal view of a project file needed for assembly
type File struct {
	Path    string
	Content string
}

// Document returns html unchanged if it already is a full document,
// otherwise wraps the fragment in a minimal boilerplate.
func Document(html string) string {
	if doctypeRe.MatchString(html) || htmlOpenRe.MatchString(html) {
		return html
	}
	return fmt.Sprintf(boilerplate, html)
}

// InjectStyles inserts css as a <style> block immediately before </head>.
// Without </head> it goes right after the opening <body> tag, and without
// either it is prepended.
func InjectStyles(doc, css string) string {
	if strings.TrimSpace(css) == "" {
		return doc
	}
	block := "<style>\n" + css + "\n</style>"

	if loc := headCloseRe.FindStringIndex(doc); loc != nil {
		return doc[:loc[0]] + block + doc[loc[0]:]
	}
	if loc := bodyOpenRe.FindStringIndex(doc); loc != nil {
		return doc[:loc[1]] + "\n" + block + doc[loc[1]:]
	}
	return block + "\n" + doc
}

// InjectScripts inserts js as a <script> block before the last </body>,
// or appends it when the document has no </body>.
func InjectScripts(doc, js string) string {
	if strings.TrimSpace(js) == "" {
		return doc
	}
	block := "<script>\n" + js + "\n</script>"

	all := bodyCloseRe.FindAllStringIndex(doc, -1)
	if len(all) == 0 {
		return doc + "\n" + block
	}
	at := all[len(all)-1][0]
	return doc[:at] + block + "\n" + doc[at:]
}

// Compose builds a previewable document from one HTML source plus
// optional CSS and JS.
func Compose(html, css, js string) string {
	return InjectScripts(InjectStyles(Document(html), css), js)
}

// Assemble builds the combined preview for a set of project files.
// The entry point is the first index.html, else the first .html file.
// All .css and .js files are inlined in list order. The second return
// is false when there is no HTML file to preview.
func Assemble(files []File) (string, bool) {
	entry := -1
	for i, f := range files {
		if strings.HasSuffix(strings.ToLower(f.Path), "index.html") {
			entry = i
			break
		}
	}
	if entry < 0 {
		for i, f := range files {
			if strings.EqualFold(path.Ext(f.Path), ".html") {
				entry = i
				break
			}
		}
	}
	if entry < 0 {
		return "", false
	}

	var css, js []string
	for _, f := range files {
		switch strings.ToLower(path.Ext(f.Path)) {
		case ".css":
			css = append(css, f.Content)
		case ".js":
			js = append(js, f.Content)
		}
	}

	return Compose(files[entry].Content, strings.Join(css, "\n"), strings.Join(js, "\n")), true
}
