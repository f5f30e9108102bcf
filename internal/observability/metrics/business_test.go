package metrics

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordPageFetched(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordPageFetched(true)
		RecordPageFetched(false)
	})
}

func TestRecordArticleOutcome(t *testing.T) {
	outcomes := []string{"inserted", "duplicated", "rejected", "failed"}
	for _, outcome := range outcomes {
		assert.NotPanics(t, func() {
			RecordArticleOutcome(outcome)
		}, "outcome=%s", outcome)
	}
}

func TestRecordRejection(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordRejection("MISSING_FIELD")
		RecordRejection("BAD_TIMESTAMP")
	})
}

func TestRecordIngestRun(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordIngestRun(3 * time.Second)
	})
}

func TestRecordArticleClassified(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordArticleClassified("Technology")
		RecordArticleClassified("General")
	})
}

func TestUpdateDBStats(t *testing.T) {
	assert.NotPanics(t, func() {
		UpdateDBStats(sql.DBStats{InUse: 3, Idle: 2})
	})
}
