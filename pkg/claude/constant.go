package claude

const (
	// BaseURL is the Anthropic Messages API endpoint.
	BaseURL = "https://api.anthropic.com/v1/messages"
	// APIVersion is sent in the anthropic-version header.
	APIVersion = "2023-06-01"
	// DefaultModel is used when no model is configured.
	DefaultModel = "claude-3-haiku-20240307"
	// DefaultMaxTokens caps the completion length.
	DefaultMaxTokens = 2048
)
