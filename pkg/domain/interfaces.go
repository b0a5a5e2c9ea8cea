package domain

import (
	"context"
)

// WebhookNotifier defines the interface for pushing notifications to the
// configured webhook endpoint.
type WebhookNotifier interface {
	// SendAnnouncement sends an announcement notification
	SendAnnouncement(ctx context.Context, announcement *Announcement) error

	// SendAlert sends an alert notification
	SendAlert(ctx context.Context, alert *Alert) error

	// IsHealthy checks if the webhook endpoint accepts messages
	IsHealthy(ctx context.Context) error
}
