// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// ActiveConnections tracks the number of active HTTP connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)
)

// Ingestion metrics track the feed ingestion pipeline
var (
	// IngestPagesFetchedTotal counts provider pages fetched by result
	IngestPagesFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_pages_fetched_total",
			Help: "Total number of provider pages fetched",
		},
		[]string{"result"}, // result: success, failure
	)

	// IngestArticlesTotal counts processed articles by outcome
	IngestArticlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_articles_total",
			Help: "Total number of articles processed by the ingestion pipeline",
		},
		[]string{"outcome"}, // outcome: inserted, duplicated, rejected, failed
	)

	// IngestRejectionsTotal counts rejected records by reason
	IngestRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_rejections_total",
			Help: "Total number of records rejected during normalization",
		},
		[]string{"reason"},
	)

	// IngestRunDuration measures the duration of one full ingestion run
	IngestRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ingest_run_duration_seconds",
			Help:    "Time taken for one full ingestion run",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	// ArticlesClassifiedTotal counts classified articles by category label
	ArticlesClassifiedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_classified_total",
			Help: "Total number of articles classified by category",
		},
		[]string{"category"},
	)
)

// Database metrics track database performance
var (
	// DBConnectionsActive tracks active database connections
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)
