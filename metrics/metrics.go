package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hirenext_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hirenext_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hirenext_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hirenext_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hirenext_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// SubmissionsJoined counts challenge joins that persisted a submission
	SubmissionsJoined = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hirenext_submissions_joined_total",
			Help: "Total number of submissions created through the join flow",
		},
	)

	// SubmissionTransitions counts lifecycle transitions by target status
	SubmissionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hirenext_submission_transitions_total",
			Help: "Total number of submission status transitions",
		},
		[]string{"status"},
	)

	// CascadeRejections counts submissions auto-rejected when a sibling was accepted
	CascadeRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hirenext_cascade_rejections_total",
			Help: "Total number of pending submissions auto-rejected by an accept",
		},
	)

	// UploadedFiles counts successful file uploads
	UploadedFiles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hirenext_uploaded_files_total",
			Help: "Total number of uploaded files",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hirenext_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hirenext_goroutine_count",
			Help: "Number of goroutines",
		},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
