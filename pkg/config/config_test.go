package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("WEBHOOK_CLIENT_WEBHOOK_URL", "https://discord.com/api/webhooks/123/token")
	t.Setenv("WEBHOOK_CLIENT_WEBHOOK_USERNAME", "env-bot")
	t.Setenv("WEBHOOK_CLIENT_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://discord.com/api/webhooks/123/token", cfg.Webhook.WebhookURL)
	assert.Equal(t, "env-bot", cfg.Webhook.Username)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WEBHOOK_CLIENT_WEBHOOK_URL", "https://discord.com/api/webhooks/123/token")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "30s", cfg.Webhook.Timeout)
	assert.Equal(t, 0x5865F2, cfg.Webhook.EmbedColor)
	assert.False(t, cfg.Webhook.TTS)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)
}

func TestLoad_MissingWebhookURL(t *testing.T) {
	t.Setenv("WEBHOOK_CLIENT_WEBHOOK_URL", "")

	cfg, err := Load("")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "WEBHOOK_CLIENT_WEBHOOK_URL")
}

func TestLoad_FromFile(t *testing.T) {
	configContent := `environment: test
log_level: warn
webhook:
  url: https://discord.com/api/webhooks/456/token
  username: file-bot
  avatar_url: https://example.com/avatar.png
  embed_color: 1193046
http:
  host: localhost
  port: 9000
metrics:
  enabled: false`

	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "https://discord.com/api/webhooks/456/token", cfg.Webhook.WebhookURL)
	assert.Equal(t, "file-bot", cfg.Webhook.Username)
	assert.Equal(t, 1193046, cfg.Webhook.EmbedColor)
	assert.Equal(t, "localhost:9000", cfg.Address())
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("WEBHOOK_CLIENT_WEBHOOK_USERNAME", "env-wins")

	configContent := `webhook:
  url: https://discord.com/api/webhooks/456/token
  username: file-bot`

	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	require.NoError(t, err)

	assert.Equal(t, "env-wins", cfg.Webhook.Username)
}
