// Package files turns assistant responses into project files.
package files

import (
	"path"
	"regexp"
	"strings"
)

// Default paths for fenced blocks found without explicit file markers
const (
	IndexPath  = "index.html"
	StylesPath = "styles.css"
	ScriptPath = "script.js"
	AppPath    = "App.jsx"
)

var (
	fileMarkerRe = regexp.MustCompile(`(?m)^[ \t]*---[ \t]*FILE:[ \t]*(\S[^\n]*?)[ \t]*---[ \t]*$`)
	fenceRe      = regexp.MustCompile("(?s)```([A-Za-z0-9+#.-]*)[^\\n]*\\n(.*?)```")
	openFenceRe  = regexp.MustCompile("^```[^\\n]*\\n")
)

// File is a file extracted from a response
type File struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// Extract finds the files in a response. Explicit "--- FILE: path ---"
// markers take precedence; otherwise html, css, js and jsx fenced blocks
// are mapped onto the default paths. Returns nil when nothing is found.
func Extract(response string) []File {
	if out := extractMarked(response); len(out) > 0 {
		return out
	}
	return extractFenced(response)
}

func extractMarked(response string) []File {
	locs := fileMarkerRe.FindAllStringSubmatchIndex(response, -1)
	if len(locs) == 0 {
		return nil
	}

	var out []File
	index := map[string]int{}
	for i, loc := range locs {
		p := CleanPath(response[loc[2]:loc[3]])
		end := len(response)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		content := stripFence(response[loc[1]:end])
		if p == "" || content == "" {
			continue
		}

		f := File{Path: p, Content: content, Language: LanguageFromPath(p)}
		if at, ok := index[p]; ok {
			out[at] = f
			continue
		}
		index[p] = len(out)
		out = append(out, f)
	}
	return out
}

func extractFenced(response string) []File {
	order := []string{IndexPath, StylesPath, ScriptPath, AppPath}
	parts := map[string][]string{}

	for _, m := range fenceRe.FindAllStringSubmatch(response, -1) {
		p := defaultPath(m[1])
		code := strings.TrimRight(m[2], "\n")
		if p == "" || strings.TrimSpace(code) == "" {
			continue
		}
		parts[p] = append(parts[p], code)
	}

	var out []File
	for _, p := range order {
		if len(parts[p]) == 0 {
			continue
		}
		out = append(out, File{
			Path:     p,
			Content:  strings.Join(parts[p], "\n\n"),
			Language: LanguageFromPath(p),
		})
	}
	return out
}

func defaultPath(lang string) string {
	switch strings.ToLower(lang) {
	case "html", "htm":
		return IndexPath
	case "css":
		return StylesPath
	case "js", "javascript":
		return ScriptPath
	case "jsx", "tsx", "react":
		return AppPath
	default:
		return ""
	}
}

// stripFence trims a marked section down to the body of its code fence.
// Prose after the closing fence is dropped.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	loc := openFenceRe.FindStringIndex(s)
	if loc == nil {
		return s
	}
	s = s[loc[1]:]
	if end := strings.Index(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

// CleanPath normalizes a path into a relative slash path. ".." segments
// cannot climb above the project root.
func CleanPath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "`\"'")
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean("/" + p)
	p = strings.TrimPrefix(p, "/")
	if p == "." {
		return ""
	}
	return p
}

// LanguageFromPath infers a language tag from a file extension
func LanguageFromPath(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".html", ".htm":
		return "html"
	case ".css":
		return "css"
	case ".js", ".mjs", ".cjs":
		return "javascript"
	case ".jsx":
		return "jsx"
	case ".ts":
		return "typescript"
	case ".tsx":
		return "tsx"
	case ".json":
		return "json"
	case ".md":
		return "markdown"
	case ".svg":
		return "svg"
	default:
		return "text"
	}
}
