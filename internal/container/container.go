package container

import (
	"github.com/elijahgives/webhook-client/internal/adapters/discord"
	"github.com/elijahgives/webhook-client/internal/adapters/httpapi"
	"github.com/elijahgives/webhook-client/internal/usecase"
	"github.com/elijahgives/webhook-client/pkg/config"
	"github.com/elijahgives/webhook-client/pkg/domain"
	"github.com/elijahgives/webhook-client/pkg/logger"
	"github.com/elijahgives/webhook-client/pkg/metrics"
)

// Container holds all application dependencies
type Container struct {
	// Configuration and infrastructure
	Config  *config.Config
	Logger  logger.Logger
	Metrics *metrics.WebhookMetrics

	// Webhook adapter (delivery layer)
	Notifier domain.WebhookNotifier

	// Use cases (application layer)
	SendAnnouncementUC *usecase.SendAnnouncementUseCase
	SendAlertUC        *usecase.SendAlertUseCase

	// Servers (presentation layer)
	RelayServer   *httpapi.Server
	MetricsServer *metrics.Server

	notifier *discord.Notifier
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, log logger.Logger) *Container {
	container := &Container{
		Config: cfg,
		Logger: log,
	}

	container.setupNotifier()
	container.setupUseCases()
	container.setupServers()

	return container
}

// setupNotifier initializes the webhook delivery adapter
func (c *Container) setupNotifier() {
	c.Logger.Info("Setting up webhook notifier")

	c.Metrics = metrics.NewWebhookMetrics(nil)
	c.notifier = discord.NewNotifier(&c.Config.Webhook, c.Logger, c.Metrics)
	c.Notifier = c.notifier
}

// setupUseCases initializes the application use cases
func (c *Container) setupUseCases() {
	c.Logger.Info("Setting up use cases")

	c.SendAnnouncementUC = usecase.NewSendAnnouncementUseCase(c.Notifier, c.Logger)
	c.SendAlertUC = usecase.NewSendAlertUseCase(c.Notifier, c.Logger)
}

// setupServers initializes the relay and metrics servers
func (c *Container) setupServers() {
	c.Logger.Info("Setting up servers")

	handler := httpapi.NewHandler(
		c.Logger,
		c.SendAnnouncementUC,
		c.SendAlertUC,
		c.notifier.Client(),
		c.Notifier,
	)
	c.RelayServer = httpapi.NewServer(c.Config, c.Logger, handler)

	if c.Config.Metrics.Enabled {
		// WebhookMetrics registered on the default registry above
		c.MetricsServer = metrics.NewServer(&c.Config.Metrics, nil, c.Logger)
	}
}
