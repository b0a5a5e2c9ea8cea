//go:build wireinject
// +build wireinject

package internal

import (
	"github.com/google/wire"

	"github.com/elijahgives/webhook-client/internal/adapters/discord"
	"github.com/elijahgives/webhook-client/internal/adapters/httpapi"
	"github.com/elijahgives/webhook-client/internal/usecase"
	"github.com/elijahgives/webhook-client/pkg/config"
	"github.com/elijahgives/webhook-client/pkg/domain"
	"github.com/elijahgives/webhook-client/pkg/logger"
	"github.com/elijahgives/webhook-client/pkg/metrics"
)

// ApplicationSet provides the complete application dependency set
var ApplicationSet = wire.NewSet(
	discord.NewNotifier,
	httpapi.NewHandler,
	httpapi.NewServer,
	usecase.NewSendAnnouncementUseCase,
	usecase.NewSendAlertUseCase,
	ProvideConfig,
	ProvideLogger,
	ProvideWebhookConfig,
	ProvideMetrics,
	ProvideRawSender,
	wire.Bind(new(domain.WebhookNotifier), new(*discord.Notifier)),
)

// ProvideConfig creates a config instance
func ProvideConfig() *config.Config {
	cfg, err := config.Load("")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	return cfg
}

// ProvideLogger creates a logger instance
func ProvideLogger(cfg *config.Config) logger.Logger {
	return logger.New(cfg.LogLevel, cfg.Environment)
}

// ProvideWebhookConfig extracts the webhook section of the config
func ProvideWebhookConfig(cfg *config.Config) *config.WebhookConfig {
	return &cfg.Webhook
}

// ProvideMetrics creates the webhook metrics on the default registry
func ProvideMetrics() *metrics.WebhookMetrics {
	return metrics.NewWebhookMetrics(nil)
}

// ProvideRawSender exposes the notifier's raw webhook client
func ProvideRawSender(notifier *discord.Notifier) httpapi.RawMessageSender {
	return notifier.Client()
}

// InitializeNotifier creates a fully wired webhook notifier
func InitializeNotifier() *discord.Notifier {
	wire.Build(ApplicationSet)
	return nil
}

// InitializeRelayServer creates a fully wired relay server
func InitializeRelayServer() *httpapi.Server {
	wire.Build(ApplicationSet)
	return nil
}
