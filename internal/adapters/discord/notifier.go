package discord

import (
	"context"
	"time"

	"github.com/elijahgives/webhook-client/pkg/config"
	"github.com/elijahgives/webhook-client/pkg/domain"
	"github.com/elijahgives/webhook-client/pkg/logger"
	"github.com/elijahgives/webhook-client/pkg/metrics"
)

// Notifier is the domain-facing webhook adapter. It composes the raw
// webhook client with the embed factory and delivery instrumentation,
// and implements domain.WebhookNotifier.
type Notifier struct {
	config       *config.WebhookConfig
	logger       logger.Logger
	client       *WebhookClient
	embedFactory *EmbedFactory
	metrics      *metrics.WebhookMetrics
}

// NewNotifier creates a new webhook notifier adapter
func NewNotifier(cfg *config.WebhookConfig, log logger.Logger, m *metrics.WebhookMetrics) *Notifier {
	return &Notifier{
		config:       cfg,
		logger:       log,
		client:       NewWebhookClient(cfg, log),
		embedFactory: NewEmbedFactory(cfg),
		metrics:      m,
	}
}

// Client exposes the underlying webhook client for callers that compose
// raw messages themselves.
func (n *Notifier) Client() *WebhookClient {
	return n.client
}

// SendAnnouncement sends an announcement to the webhook
func (n *Notifier) SendAnnouncement(ctx context.Context, announcement *domain.Announcement) error {
	n.logger.WithFields(map[string]interface{}{
		"title": announcement.Title,
		"link":  announcement.Link,
	}).Info("Sending announcement to webhook")

	embed := n.embedFactory.CreateAnnouncementEmbed(announcement)
	return n.deliver(ctx, "announcement", "", []Embed{embed})
}

// SendAlert sends an operational alert to the webhook
func (n *Notifier) SendAlert(ctx context.Context, alert *domain.Alert) error {
	n.logger.WithFields(map[string]interface{}{
		"title":    alert.Title,
		"severity": alert.Severity.String(),
		"source":   alert.Source,
	}).Info("Sending alert to webhook")

	embed := n.embedFactory.CreateAlertEmbed(alert)
	return n.deliver(ctx, "alert", "", []Embed{embed})
}

// deliver posts the message and records delivery metrics
func (n *Notifier) deliver(ctx context.Context, kind, content string, embeds []Embed) error {
	start := time.Now()
	size, err := n.client.send(ctx, WebhookMessage{
		Content: content,
		TTS:     n.config.TTS,
		Embeds:  embeds,
	})
	n.metrics.SendDuration.Observe(time.Since(start).Seconds())
	n.metrics.EmbedsPerMessage.Observe(float64(len(embeds)))

	if err != nil {
		n.metrics.SendErrorsTotal.WithLabelValues(kind).Inc()
		n.logger.WithError(err).WithField("kind", kind).Error("Webhook delivery failed")
		return err
	}

	n.metrics.MessagesSentTotal.WithLabelValues(kind).Inc()
	n.metrics.PayloadSizeBytes.Observe(float64(size))

	return nil
}

// IsHealthy checks that the webhook is configured and answers the
// endpoint validity probe.
func (n *Notifier) IsHealthy(ctx context.Context) error {
	n.metrics.HealthChecksTotal.Inc()

	if err := n.client.CheckWebhook(ctx); err != nil {
		n.metrics.HealthCheckFailures.Inc()
		return err
	}

	return nil
}
