package discord

import (
	"time"

	pkghttp "engagement-srv/pkg/http"
	"engagement-srv/pkg/log"
)

// Config contains configuration for the Discord service.
type Config struct {
	Timeout         time.Duration
	RetryCount      int
	RetryDelay      time.Duration
	DefaultUsername string
}

// DefaultConfig returns the default Discord configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "engagement-srv",
	}
}

func pkghttpClient(cfg Config) pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   cfg.Timeout,
		Retries:   cfg.RetryCount,
		RetryWait: cfg.RetryDelay,
	})
}

// discordImpl implements IDiscord.
type discordImpl struct {
	l          log.Logger
	webhook    *DiscordWebhook
	config     Config
	httpClient pkghttp.IClient
}

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload represents the payload sent to the Discord webhook.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}
