package claude

import (
	"context"
	"fmt"
	"time"

	pkghttp "engagement-srv/pkg/http"
)

// IClaude defines the interface for Anthropic Claude text generation.
// Implementations are safe for concurrent use.
type IClaude interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewClaude creates a new Claude client. Model defaults to DefaultModel if empty.
// APIKey must be set; Generate will return an error if it is empty.
func NewClaude(cfg ClaudeConfig) (IClaude, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("claude: API key is required")
	}
	return &claudeImpl{
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   60 * time.Second,
			Retries:   3,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}
