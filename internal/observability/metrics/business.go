package metrics

import (
	"database/sql"
	"time"
)

// RecordPageFetched records the result of fetching one provider page.
func RecordPageFetched(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	IngestPagesFetchedTotal.WithLabelValues(result).Inc()
}

// RecordArticleOutcome records the pipeline outcome for one article.
// Outcome should be one of "inserted", "duplicated", "rejected", "failed".
func RecordArticleOutcome(outcome string) {
	IngestArticlesTotal.WithLabelValues(outcome).Inc()
}

// RecordRejection records a normalization rejection by reason code.
func RecordRejection(reason string) {
	IngestRejectionsTotal.WithLabelValues(reason).Inc()
}

// RecordIngestRun records the duration of one full ingestion run.
func RecordIngestRun(duration time.Duration) {
	IngestRunDuration.Observe(duration.Seconds())
}

// RecordArticleClassified records the category label an article was assigned.
func RecordArticleClassified(category string) {
	ArticlesClassifiedTotal.WithLabelValues(category).Inc()
}

// UpdateDBStats updates the database connection gauges from pool statistics.
// This should be called periodically while the process is running.
func UpdateDBStats(stats sql.DBStats) {
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
}
