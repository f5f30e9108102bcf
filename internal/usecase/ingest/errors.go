// Package ingest provides the feed ingestion pipeline: normalizing raw
// provider records, classifying them into categories, and upserting them
// into storage.
package ingest

import (
	"fmt"

	"news-aggregator/internal/domain/entity"
)

// Rejection reason codes reported when a raw record fails normalization.
const (
	// ReasonMissingField indicates a required field was absent or blank.
	ReasonMissingField = "MISSING_FIELD"

	// ReasonBadTimestamp indicates the publication timestamp could not be
	// parsed.
	ReasonBadTimestamp = "BAD_TIMESTAMP"
)

// RejectionError reports why a raw record was dropped during normalization.
// Rejections are record-scoped; processing of sibling records continues.
type RejectionError struct {
	Reason string // MISSING_FIELD or BAD_TIMESTAMP
	Field  string // the offending field, e.g. "title", "publishedAt"
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("record rejected: %s (%s)", e.Reason, e.Field)
}

// Unwrap marks every rejection as invalid input so callers can match with
// errors.Is(err, entity.ErrInvalidInput) without knowing the reason codes.
func (e *RejectionError) Unwrap() error {
	return entity.ErrInvalidInput
}
