package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation results recorded by ResourceOperation
const (
	ResultSuccess   = "success"
	ResultInvalid   = "invalid"
	ResultNotFound  = "not_found"
	ResultDBFailure = "db_failure"
)

// APIMetrics holds the request and resource operation collectors
type APIMetrics struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	operations *prometheus.CounterVec
}

// NewAPIMetrics registers the HTTP collectors on registry
func NewAPIMetrics(registry prometheus.Registerer) *APIMetrics {
	return &APIMetrics{
		requests: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "The total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		duration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency distribution",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		operations: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "resource_operations_total",
				Help: "CRUD operations by resource and result",
			},
			[]string{"resource", "operation", "result"},
		),
	}
}

// ObserveRequest записывает завершенный HTTP запрос
func (m *APIMetrics) ObserveRequest(method, path, status string, seconds float64) {
	m.requests.WithLabelValues(method, path, status).Inc()
	m.duration.WithLabelValues(method, path).Observe(seconds)
}

// ResourceOperation увеличивает счетчик операций над ресурсом
func (m *APIMetrics) ResourceOperation(resource, operation, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(resource, operation, result).Inc()
}
