package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. Callers pass an
// explicit registerer so tests can use isolated registries.
type Metrics struct {
	DocumentsCreated     prometheus.Counter
	WorkflowTransitions  *prometheus.CounterVec
	NotificationsEmitted prometheus.Counter
	RequestDuration      *prometheus.HistogramVec
}

// New creates and registers all metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DocumentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ereporting_documents_created_total",
			Help: "Total number of documents created.",
		}),
		WorkflowTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ereporting_document_transitions_total",
			Help: "Total number of document workflow transitions by target status.",
		}, []string{"status"}),
		NotificationsEmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "ereporting_notifications_emitted_total",
			Help: "Total number of notifications appended to the log.",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ereporting_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}
