package chat

import "webcraft/internal/domain/models/codegen"

// CodeGenerator is the local, deterministic code engine.
// Generate never fails; unmatched prompts produce the default template.
type CodeGenerator interface {
	Generate(prompt string) codegen.Result
	Templates() []codegen.TemplateInfo
}
