package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/elijahgives/webhook-client/pkg/domain"
	"github.com/elijahgives/webhook-client/pkg/logger"
)

// SendAlertUseCase orchestrates alert delivery business rules
type SendAlertUseCase struct {
	notifier domain.WebhookNotifier
	logger   logger.Logger
}

// NewSendAlertUseCase creates a new send alert use case
func NewSendAlertUseCase(notifier domain.WebhookNotifier, logger logger.Logger) *SendAlertUseCase {
	return &SendAlertUseCase{
		notifier: notifier,
		logger:   logger,
	}
}

// SendAlertCommand represents the command to publish an alert
type SendAlertCommand struct {
	Severity  string
	Title     string
	Message   string
	Source    string
	Timestamp time.Time
	Fields    []domain.Field
}

// SendAlertResult represents the result of publishing an alert
type SendAlertResult struct {
	Success bool
	Message string
	SentAt  time.Time
}

// Execute publishes an alert according to business rules
func (uc *SendAlertUseCase) Execute(ctx context.Context, cmd *SendAlertCommand) (*SendAlertResult, error) {
	uc.logger.WithFields(map[string]interface{}{
		"title":    cmd.Title,
		"severity": cmd.Severity,
		"source":   cmd.Source,
	}).Info("Starting alert notification")

	alert := &domain.Alert{
		Severity:  parseSeverity(cmd.Severity),
		Title:     cmd.Title,
		Message:   cmd.Message,
		Source:    cmd.Source,
		Timestamp: cmd.Timestamp,
		Fields:    cmd.Fields,
	}

	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now().UTC()
	}

	if !alert.IsValid() {
		uc.logger.WithField("title", cmd.Title).Error("Alert validation failed")
		return nil, fmt.Errorf("alert %w: title and message are required", ErrInvalidCommand)
	}

	if err := uc.notifier.SendAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to send alert: %w", err)
	}

	return &SendAlertResult{
		Success: true,
		Message: "alert sent successfully",
		SentAt:  time.Now().UTC(),
	}, nil
}

// parseSeverity maps a free-form severity string to a known level,
// defaulting to info.
func parseSeverity(value string) domain.Severity {
	switch domain.Severity(value) {
	case domain.SeverityWarning:
		return domain.SeverityWarning
	case domain.SeverityCritical:
		return domain.SeverityCritical
	default:
		return domain.SeverityInfo
	}
}
