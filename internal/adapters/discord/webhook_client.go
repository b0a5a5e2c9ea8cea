package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/elijahgives/webhook-client/pkg/config"
	"github.com/elijahgives/webhook-client/pkg/logger"
)

const (
	// DefaultTimeout is the default HTTP timeout for webhook requests
	DefaultTimeout = 30 * time.Second

	// maxErrorBodySize caps how much of an error response body is kept
	maxErrorBodySize = 4096
)

// WebhookClient posts messages to a single Discord webhook endpoint.
// It holds no mutable state between calls; concurrent sends are safe.
// Every send is an independent one-shot POST: no retries, no rate-limit
// handling, no response parsing beyond the status code.
type WebhookClient struct {
	config     *config.WebhookConfig
	logger     logger.Logger
	httpClient *http.Client
}

// NewWebhookClient creates a webhook client for the configured endpoint.
// A missing webhook URL is not rejected here; it surfaces on first send.
func NewWebhookClient(cfg *config.WebhookConfig, log logger.Logger) *WebhookClient {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		timeout = DefaultTimeout
	}

	return &WebhookClient{
		config: cfg,
		logger: log,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send posts a message with the given content and embeds. The configured
// username and avatar override the webhook's display identity on every
// call. The embeds key is always present in the body, as [] when empty.
func (c *WebhookClient) Send(ctx context.Context, content string, embeds []Embed) error {
	_, err := c.send(ctx, WebhookMessage{
		Content: content,
		TTS:     c.config.TTS,
		Embeds:  embeds,
	})
	return err
}

// SendMessage posts a fully-formed message payload to the webhook. The
// configured sender identity fills in any identity fields the message
// leaves empty, so a configured username reaches Discord on every call.
func (c *WebhookClient) SendMessage(ctx context.Context, message WebhookMessage) error {
	_, err := c.send(ctx, message)
	return err
}

// send posts the message and returns the serialized payload size.
func (c *WebhookClient) send(ctx context.Context, message WebhookMessage) (int, error) {
	if c.config.WebhookURL == "" {
		return 0, ErrWebhookURLMissing
	}

	if message.Username == "" {
		message.Username = c.config.Username
	}
	if message.AvatarURL == "" {
		message.AvatarURL = c.config.AvatarURL
	}

	if message.Embeds == nil {
		message.Embeds = []Embed{}
	}

	body, err := json.Marshal(message)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return 0, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	// Drain the body so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.WithFields(map[string]interface{}{
		"embeds":       len(message.Embeds),
		"payload_size": len(body),
	}).Debug("Webhook message delivered")

	return len(body), nil
}

// CheckWebhook verifies the webhook endpoint answers a GET with 200 or
// 204, which Discord does for live webhooks.
func (c *WebhookClient) CheckWebhook(ctx context.Context) error {
	if c.config.WebhookURL == "" {
		return ErrWebhookURLMissing
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.WebhookURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach webhook endpoint: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("%w: endpoint answered status %d", ErrInvalidWebhook, resp.StatusCode)
	}

	return nil
}
