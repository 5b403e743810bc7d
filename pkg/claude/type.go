package claude

import pkghttp "engagement-srv/pkg/http"

// ClaudeConfig holds the configuration for the Claude client.
type ClaudeConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// claudeImpl implements IClaude using the Anthropic Messages API.
type claudeImpl struct {
	apiKey     string
	model      string
	maxTokens  int
	httpClient pkghttp.IClient
}

// Request defines the request body for the Messages API.
type Request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// Message represents a single conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response defines the response body from the Messages API.
type Response struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Role       string         `json:"role"`
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      Usage          `json:"usage"`
}

// ContentBlock represents a block of generated content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Usage represents token usage.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
