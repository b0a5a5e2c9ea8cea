package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/elijahgives/webhook-client/pkg/domain"
	"github.com/elijahgives/webhook-client/pkg/logger"
)

// SendAnnouncementUseCase orchestrates announcement delivery business rules
type SendAnnouncementUseCase struct {
	notifier domain.WebhookNotifier
	logger   logger.Logger
}

// NewSendAnnouncementUseCase creates a new send announcement use case
func NewSendAnnouncementUseCase(notifier domain.WebhookNotifier, logger logger.Logger) *SendAnnouncementUseCase {
	return &SendAnnouncementUseCase{
		notifier: notifier,
		logger:   logger,
	}
}

// SendAnnouncementCommand represents the command to publish an announcement
type SendAnnouncementCommand struct {
	Title       string
	Body        string
	Link        string
	ImageURL    string
	PublishedAt time.Time
	Fields      []domain.Field
	Metadata    map[string]string
}

// SendAnnouncementResult represents the result of publishing an announcement
type SendAnnouncementResult struct {
	Success bool
	Message string
	SentAt  time.Time
}

// Execute publishes an announcement according to business rules
func (uc *SendAnnouncementUseCase) Execute(ctx context.Context, cmd *SendAnnouncementCommand) (*SendAnnouncementResult, error) {
	uc.logger.WithFields(map[string]interface{}{
		"title": cmd.Title,
		"link":  cmd.Link,
	}).Info("Starting announcement notification")

	announcement := &domain.Announcement{
		Title:       cmd.Title,
		Body:        cmd.Body,
		Link:        cmd.Link,
		ImageURL:    cmd.ImageURL,
		PublishedAt: cmd.PublishedAt,
		Fields:      cmd.Fields,
		Metadata:    cmd.Metadata,
	}

	if announcement.PublishedAt.IsZero() {
		announcement.PublishedAt = time.Now().UTC()
	}

	if !announcement.IsValid() {
		uc.logger.WithField("title", cmd.Title).Error("Announcement validation failed")
		return nil, fmt.Errorf("announcement %w: title and body are required", ErrInvalidCommand)
	}

	if err := uc.notifier.SendAnnouncement(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to send announcement: %w", err)
	}

	return &SendAnnouncementResult{
		Success: true,
		Message: "announcement sent successfully",
		SentAt:  time.Now().UTC(),
	}, nil
}
