package config

const (
	// MaxConversationTitleLength is the maximum length for conversation titles.
	MaxConversationTitleLength = 200

	// AutoTitleLength is how many characters of the first user message
	// become the title of an untitled conversation.
	AutoTitleLength = 50

	// MaxMessageLength is the maximum length of a chat message or prompt.
	MaxMessageLength = 32000

	// MaxAssistantMessageLength bounds assistant messages saved by clients.
	// Generated documents are larger than user prompts.
	MaxAssistantMessageLength = 200000

	// MaxFilePathLength is the maximum length for project file paths.
	MaxFilePathLength = 500

	// MaxFileContentLength is the maximum size of a single project file.
	MaxFileContentLength = 1 << 20

	// MaxBulkFiles limits how many files one bulk save may carry.
	MaxBulkFiles = 100

	// MaxLanguageLength is the maximum length of a file language tag.
	MaxLanguageLength = 50

	// MaxProjectNameLength bounds the inferred or client-set project name.
	MaxProjectNameLength = 200

	// MaxProjectDescriptionLength bounds the project description.
	MaxProjectDescriptionLength = 2000

	// MaxContextListItems bounds techStack and featuresBuilt in one patch.
	MaxContextListItems = 100

	// MaxContextLabelLength bounds a single tech stack or feature label.
	MaxContextLabelLength = 100

	// MaxProjectSummaryLength bounds the project summary.
	MaxProjectSummaryLength = 2000

	// MaxLastCodeLength bounds the stored copy of the latest generated HTML.
	MaxLastCodeLength = 5000
)
