package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	colorError   = 0xED4245
	colorWarning = 0xFEE75C
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}

	body, statusCode, err := d.httpClient.Post(ctx, d.webhookURL(), payload, nil)
	if err != nil {
		return fmt.Errorf("failed to call Discord webhook: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusNoContent {
		return fmt.Errorf("Discord webhook returned status: %d, body: %s", statusCode, string(body))
	}
	return nil
}

// SendMessage sends a plain text message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{Content: content})
}

// SendError sends an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: description,
		Color:       colorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = append(embed.Fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.send(ctx, WebhookPayload{Embeds: []Embed{embed}})
}

// SendWarning sends a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.send(ctx, WebhookPayload{Embeds: []Embed{{
		Title:       title,
		Description: description,
		Color:       colorWarning,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}}})
}

// ReportBug reports an unexpected server error.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendError(ctx, "Bug Report", message, nil)
}

// Close releases resources. The webhook client holds none.
func (d *discordImpl) Close() error {
	return nil
}
