package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides Prometheus metrics for the ingestion worker's cron jobs:
//
//   - worker_cron_job_runs_total: total runs by status (success/failure)
//   - worker_cron_job_duration_seconds: duration histogram of job execution
//   - worker_cron_job_articles_processed_total: articles processed across runs
//   - worker_cron_job_last_success_timestamp: Unix time of last successful run
//
// Example usage:
//
//	metrics := NewMetrics()
//	start := time.Now()
//	stats, err := svc.Run(ctx)
//	metrics.RecordJobDuration(time.Since(start).Seconds())
//	if err != nil {
//	    metrics.RecordJobRun("failure")
//	} else {
//	    metrics.RecordJobRun("success")
//	    metrics.RecordArticlesProcessed(stats.Fetched)
//	    metrics.RecordLastSuccess()
//	}
type Metrics struct {
	CronJobRunsTotal              *prometheus.CounterVec
	CronJobDurationSeconds        prometheus.Histogram
	CronJobArticlesProcessedTotal prometheus.Counter
	CronJobLastSuccessTimestamp   prometheus.Gauge
}

// NewMetrics creates worker metrics. Registration with the default registry
// happens automatically via promauto.
func NewMetrics() *Metrics {
	return &Metrics{
		CronJobRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_cron_job_runs_total",
			Help: "Total number of cron job runs by status (success/failure)",
		}, []string{"status"}),

		CronJobDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_cron_job_duration_seconds",
			Help:    "Duration of cron job execution in seconds",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800},
		}),

		CronJobArticlesProcessedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_cron_job_articles_processed_total",
			Help: "Total number of articles processed across all cron job runs",
		}),

		CronJobLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_cron_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful cron job run",
		}),
	}
}

// RecordJobRun increments the job run counter for the given status
// ("success" or "failure").
func (m *Metrics) RecordJobRun(status string) {
	m.CronJobRunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes the duration of a cron job execution in seconds.
func (m *Metrics) RecordJobDuration(seconds float64) {
	m.CronJobDurationSeconds.Observe(seconds)
}

// RecordArticlesProcessed adds the number of articles processed in a run.
func (m *Metrics) RecordArticlesProcessed(count int) {
	m.CronJobArticlesProcessedTotal.Add(float64(count))
}

// RecordLastSuccess records the current time as the last successful completion.
func (m *Metrics) RecordLastSuccess() {
	m.CronJobLastSuccessTimestamp.SetToCurrentTime()
}
