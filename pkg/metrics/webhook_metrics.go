package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WebhookMetrics holds all webhook delivery Prometheus metrics
type WebhookMetrics struct {
	// Delivery metrics
	MessagesSentTotal   *prometheus.CounterVec
	SendErrorsTotal     *prometheus.CounterVec
	SendDuration        prometheus.Histogram
	PayloadSizeBytes    prometheus.Histogram
	EmbedsPerMessage    prometheus.Histogram
	HealthChecksTotal   prometheus.Counter
	HealthCheckFailures prometheus.Counter
}

// NewWebhookMetrics creates and registers all webhook delivery metrics.
// A nil registerer falls back to the default Prometheus registry.
func NewWebhookMetrics(reg prometheus.Registerer) *WebhookMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &WebhookMetrics{
		MessagesSentTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "webhook_messages_sent_total",
			Help: "Total number of messages successfully posted to the webhook",
		}, []string{"kind"}),

		SendErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "webhook_send_errors_total",
			Help: "Total number of failed webhook deliveries",
		}, []string{"kind"}),

		SendDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "webhook_send_duration_seconds",
			Help:    "Time taken to post a message to the webhook",
			Buckets: prometheus.DefBuckets,
		}),

		PayloadSizeBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "webhook_payload_size_bytes",
			Help:    "Size of serialized webhook payloads",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		}),

		EmbedsPerMessage: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "webhook_embeds_per_message",
			Help:    "Number of embeds attached to each message",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		}),

		HealthChecksTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "webhook_health_checks_total",
			Help: "Total number of webhook health checks performed",
		}),

		HealthCheckFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "webhook_health_check_failures_total",
			Help: "Total number of failed webhook health checks",
		}),
	}
}
