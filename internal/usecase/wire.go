//go:build wireinject
// +build wireinject

package usecase

import (
	"github.com/google/wire"

	"github.com/elijahgives/webhook-client/pkg/domain"
	"github.com/elijahgives/webhook-client/pkg/logger"
)

// UseCaseSet provides all use case implementations
var UseCaseSet = wire.NewSet(
	NewSendAnnouncementUseCase,
	NewSendAlertUseCase,
)

// SendAnnouncementUseCaseProvider provides the send announcement use case
func SendAnnouncementUseCaseProvider(
	notifier domain.WebhookNotifier,
	log logger.Logger,
) *SendAnnouncementUseCase {
	wire.Build(UseCaseSet)
	return nil
}

// SendAlertUseCaseProvider provides the send alert use case
func SendAlertUseCaseProvider(
	notifier domain.WebhookNotifier,
	log logger.Logger,
) *SendAlertUseCase {
	wire.Build(UseCaseSet)
	return nil
}
