// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count)
//   - Ingestion pipeline metrics (pages, outcomes, rejections)
//   - Database connection metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "news-aggregator/internal/observability/metrics"
//
//	func ingestPage() {
//	    metrics.RecordPageFetched(true)
//	    metrics.RecordArticleOutcome("inserted")
//	}
package metrics
