package claude

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Generate generates content based on the prompt.
func (c *claudeImpl) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("claude: API key is required")
	}

	req := Request{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
	}

	headers := map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": APIVersion,
	}

	body, statusCode, err := c.httpClient.Post(ctx, BaseURL, req, headers)
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	if statusCode != http.StatusOK {
		return "", fmt.Errorf("Claude API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal Claude response: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text content generated")
	}
	return b.String(), nil
}
