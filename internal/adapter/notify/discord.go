package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	colorGreen = 3066993
	colorRed   = 15158332
)

// DiscordClient posts operational events to a Discord webhook as embeds.
type DiscordClient struct {
	webhookURL string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewDiscordClient creates the client. An empty URL disables posting.
func NewDiscordClient(webhookURL string, timeout time.Duration, log zerolog.Logger) *DiscordClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DiscordClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "discord_client").Logger(),
	}
}

type discordEmbed struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Color       int           `json:"color"`
	Timestamp   string        `json:"timestamp"`
	Footer      discordFooter `json:"footer"`
}

type discordFooter struct {
	Text string `json:"text"`
}

// Post sends one embed. Green for success, red for failure.
func (c *DiscordClient) Post(ctx context.Context, title string, description string, success bool) error {
	if c.webhookURL == "" {
		c.log.Warn().Msg("discord webhook not configured, event dropped")
		return nil
	}

	color := colorGreen
	if !success {
		color = colorRed
	}
	payload, err := json.Marshal(map[string][]discordEmbed{
		"embeds": {{
			Title:       title,
			Description: description,
			Color:       color,
			Timestamp:   time.Now().Format(time.RFC3339),
			Footer:      discordFooter{Text: "enrolld"},
		}},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting discord event: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord post failed: HTTP %d", resp.StatusCode)
	}
	return nil
}
