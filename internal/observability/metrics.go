package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operations_total",
		Help: "Total number of record store operations",
	}, []string{"collection", "op"})

	StoreOperationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operation_errors_total",
		Help: "Total number of failed record store operations",
	}, []string{"collection", "op"})

	StoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Latency of record store operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection", "op"})

	CollectionsSeededTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collections_seeded_total",
		Help: "Total number of collections seeded from the initial dataset",
	}, []string{"collection"})

	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Total number of login attempts",
	}, []string{"outcome"})

	CommentsAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticket_comments_added_total",
		Help: "Total number of comments appended to tickets",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)
