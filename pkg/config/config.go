package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Environment string        `mapstructure:"environment"`
	LogLevel    string        `mapstructure:"log_level"`
	Webhook     WebhookConfig `mapstructure:"webhook"`
	HTTP        HTTPConfig    `mapstructure:"http"`
	Metrics     MetricsConfig `mapstructure:"metrics"`
}

// WebhookConfig holds the Discord webhook endpoint and sender identity.
// Username and AvatarURL override the webhook's default identity per
// request; Discord never persists them.
type WebhookConfig struct {
	WebhookURL string `mapstructure:"url"`
	Username   string `mapstructure:"username"`
	AvatarURL  string `mapstructure:"avatar_url"`
	Timeout    string `mapstructure:"timeout"`
	EmbedColor int    `mapstructure:"embed_color"`
	TTS        bool   `mapstructure:"tts"`
}

// HTTPConfig holds the relay HTTP server configuration
type HTTPConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  string `mapstructure:"read_timeout"`
	WriteTimeout string `mapstructure:"write_timeout"`
}

// MetricsConfig holds the Prometheus metrics server configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Environment variables take precedence over file values
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("WEBHOOK_CLIENT")

	v.BindEnv("environment", "WEBHOOK_CLIENT_ENVIRONMENT")
	v.BindEnv("log_level", "WEBHOOK_CLIENT_LOG_LEVEL")

	v.BindEnv("webhook.url", "WEBHOOK_CLIENT_WEBHOOK_URL")
	v.BindEnv("webhook.username", "WEBHOOK_CLIENT_WEBHOOK_USERNAME")
	v.BindEnv("webhook.avatar_url", "WEBHOOK_CLIENT_WEBHOOK_AVATAR_URL")
	v.BindEnv("webhook.timeout", "WEBHOOK_CLIENT_WEBHOOK_TIMEOUT")
	v.BindEnv("webhook.embed_color", "WEBHOOK_CLIENT_WEBHOOK_EMBED_COLOR")
	v.BindEnv("webhook.tts", "WEBHOOK_CLIENT_WEBHOOK_TTS")

	v.BindEnv("http.host", "WEBHOOK_CLIENT_HTTP_HOST")
	v.BindEnv("http.port", "WEBHOOK_CLIENT_HTTP_PORT")

	v.BindEnv("metrics.enabled", "WEBHOOK_CLIENT_METRICS_ENABLED")
	v.BindEnv("metrics.port", "WEBHOOK_CLIENT_METRICS_PORT")

	// .env file is optional and only used for local development
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/webhook-client")

		if err := v.MergeInConfig(); err != nil {
			// Config file is optional when environment variables provide all values
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Webhook.WebhookURL == "" {
		return nil, fmt.Errorf("WEBHOOK_CLIENT_WEBHOOK_URL must be set")
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")

	v.SetDefault("webhook.timeout", "30s")
	v.SetDefault("webhook.embed_color", 0x5865F2) // Discord blurple
	v.SetDefault("webhook.tts", false)

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", "10s")
	v.SetDefault("http.write_timeout", "30s")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
}

// Address returns the relay HTTP server address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}
