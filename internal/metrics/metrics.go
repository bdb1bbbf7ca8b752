// Package metrics holds the Prometheus collectors of the service and small
// helpers to record into them. Collectors are registered on the default
// registry, which is exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of a single batch submission attempt.
const (
	OutcomeSucceeded   = "succeeded"
	OutcomeRateLimited = "rate_limited"
	OutcomeServerError = "server_error"
	OutcomeFatal       = "fatal"
	OutcomeInterrupted = "interrupted"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	activeRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Number of HTTP requests being served",
		},
	)

	remoteRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubspot_requests_total",
			Help: "Total number of outbound CRM requests by operation and status",
		},
		[]string{"operation", "status"},
	)

	batchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubspot_batch_attempts_total",
			Help: "Total number of batch submission attempts by outcome",
		},
		[]string{"outcome"},
	)

	batchRetryWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hubspot_batch_retry_wait_seconds",
			Help:    "Waits scheduled between batch submission attempts",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
	)

	webhookVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_verifications_total",
			Help: "Total number of webhook signature checks by result",
		},
		[]string{"result"},
	)
)

// ObserveHTTPRequest records one served inbound request.
func ObserveHTTPRequest(method, route, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// IncActiveRequests and DecActiveRequests track in-flight inbound requests.
func IncActiveRequests() { activeRequests.Inc() }

func DecActiveRequests() { activeRequests.Dec() }

// RecordRemoteRequest records one outbound CRM round trip. status is the
// HTTP status code as text, or "error" when no response was received.
func RecordRemoteRequest(operation, status string) {
	remoteRequestsTotal.WithLabelValues(operation, status).Inc()
}

// RecordBatchAttempt records the outcome of one batch submission attempt.
func RecordBatchAttempt(outcome string) {
	batchAttemptsTotal.WithLabelValues(outcome).Inc()
}

// RecordBatchRetryWait records a scheduled wait before the next attempt.
func RecordBatchRetryWait(seconds float64) {
	batchRetryWait.Observe(seconds)
}

// RecordWebhookVerification records a signature check result.
func RecordWebhookVerification(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	webhookVerificationsTotal.WithLabelValues(result).Inc()
}
