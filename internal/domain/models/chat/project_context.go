package chat

// ProjectContext is the sparse patch form of a conversation's project memory.
// A nil field (or nil slice) means "no change".
type ProjectContext struct {
	ProjectName        *string  `json:"projectName,omitempty"`
	ProjectDescription *string  `json:"projectDescription,omitempty"`
	TechStack          []string `json:"techStack,omitempty"`
	FeaturesBuilt      []string `json:"featuresBuilt,omitempty"`
	ProjectSummary     *string  `json:"projectSummary,omitempty"`
	LastCodeGenerated  *string  `json:"lastCodeGenerated,omitempty"`
}

// IsEmpty reports whether the patch carries no fields
func (p ProjectContext) IsEmpty() bool {
	return p.ProjectName == nil &&
		p.ProjectDescription == nil &&
		p.TechStack == nil &&
		p.FeaturesBuilt == nil &&
		p.ProjectSummary == nil &&
		p.LastCodeGenerated == nil
}
