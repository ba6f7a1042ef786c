package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// WhatsAppClient sends text messages through a ChatPro instance.
type WhatsAppClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewWhatsAppClient creates the client. An empty endpoint disables sending.
func NewWhatsAppClient(endpoint string, token string, timeout time.Duration, log zerolog.Logger) *WhatsAppClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WhatsAppClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "whatsapp_client").Logger(),
	}
}

// SendText delivers a plain text message to the number.
func (c *WhatsAppClient) SendText(ctx context.Context, number string, message string) error {
	if c.endpoint == "" || c.token == "" {
		c.log.Warn().Msg("whatsapp endpoint not configured, message dropped")
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"number":  sanitizeNumber(number),
		"message": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending whatsapp message: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp send failed: HTTP %d", resp.StatusCode)
	}
	return nil
}

// sanitizeNumber keeps digits only and assumes Brazil when the country code
// is missing.
func sanitizeNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}
	return digits
}
