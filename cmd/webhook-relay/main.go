package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elijahgives/webhook-client/internal/container"
	"github.com/elijahgives/webhook-client/pkg/config"
	"github.com/elijahgives/webhook-client/pkg/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.LogLevel, cfg.Environment)
	log.Info("Starting webhook relay...")

	c := container.NewContainer(cfg, log)

	if c.MetricsServer != nil {
		if err := c.MetricsServer.Start(); err != nil {
			log.WithError(err).Error("Failed to start metrics server")
		}
	}

	go func() {
		if err := c.RelayServer.Start(); err != nil {
			log.WithError(err).Fatal("Relay server failed")
		}
	}()

	// Probe the webhook once at startup so a revoked URL is visible
	// immediately instead of on the first delivery.
	probeCtx, probeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := c.Notifier.IsHealthy(probeCtx); err != nil {
		log.WithError(err).Warn("Webhook endpoint health check failed")
	} else {
		log.Info("Webhook endpoint is healthy")
	}
	probeCancel()

	// Wait for interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := c.RelayServer.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to stop relay server")
	}

	if c.MetricsServer != nil {
		if err := c.MetricsServer.Stop(shutdownCtx); err != nil {
			log.WithError(err).Error("Failed to stop metrics server")
		}
	}

	log.Info("Shutdown complete")
}
