// Package metrics provides Prometheus metrics for the vision-chat-api service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "jan"
	subsystem = "vision_chat_api"
)

var (
	// RequestsTotal counts HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// ChatMessagesTotal counts processed chat messages by outcome.
	ChatMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "chat_messages_total",
			Help:      "Total chat messages processed",
		},
		[]string{"status"},
	)

	// ConversationsDeletedTotal counts deleted conversations.
	ConversationsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "conversations_deleted_total",
			Help:      "Total conversations deleted",
		},
	)

	// ConversationsStored reports the number of conversations held in memory.
	ConversationsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "conversations_stored",
			Help:      "Number of conversations currently held in memory",
		},
	)

	// ProviderCallsTotal counts calls to the AI provider.
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "provider_calls_total",
			Help:      "Total AI provider calls",
		},
		[]string{"provider", "operation", "status"},
	)

	// ProviderCallDuration tracks AI provider latency.
	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "provider_call_duration_seconds",
			Help:      "AI provider call duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"provider", "operation"},
	)

	// AnalysesTotal counts text and image analyses.
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "analyses_total",
			Help:      "Total analyses performed",
		},
		[]string{"kind", "status"},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method, endpoint, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordChatMessage records the outcome of a chat message.
func RecordChatMessage(status string) {
	ChatMessagesTotal.WithLabelValues(status).Inc()
}

// RecordConversationDeleted increments the deletion counter.
func RecordConversationDeleted() {
	ConversationsDeletedTotal.Inc()
}

// SetConversationsStored sets the stored conversation gauge.
func SetConversationsStored(n int) {
	ConversationsStored.Set(float64(n))
}

// RecordProviderCall records a single AI provider call.
func RecordProviderCall(provider, operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ProviderCallsTotal.WithLabelValues(provider, operation, status).Inc()
	ProviderCallDuration.WithLabelValues(provider, operation).Observe(duration.Seconds())
}

// RecordAnalysis records the outcome of a text or image analysis.
func RecordAnalysis(kind string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	AnalysesTotal.WithLabelValues(kind, status).Inc()
}
