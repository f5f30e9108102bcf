package ingest

import (
	"strings"
	"time"

	"news-aggregator/internal/infra/gnews"
)

// NormalizedArticle is a raw record that passed validation, with its
// publication timestamp parsed into a real time.Time.
type NormalizedArticle struct {
	Title       string
	Description string
	URL         string
	ImageURL    string
	PublishedAt time.Time
	SourceName  string
}

// Normalize validates a raw provider record and parses its timestamp.
// Validation is ordered and short-circuits on the first failure: title,
// url, publishedAt, source name. The timestamp must be RFC 3339 (ISO-8601
// with numeric offset or Z); an unparseable timestamp is a rejection, never
// a fallback value.
func Normalize(raw gnews.RawArticle) (*NormalizedArticle, error) {
	if strings.TrimSpace(raw.Title) == "" {
		return nil, &RejectionError{Reason: ReasonMissingField, Field: "title"}
	}
	if strings.TrimSpace(raw.URL) == "" {
		return nil, &RejectionError{Reason: ReasonMissingField, Field: "url"}
	}
	if strings.TrimSpace(raw.PublishedAt) == "" {
		return nil, &RejectionError{Reason: ReasonMissingField, Field: "publishedAt"}
	}
	if strings.TrimSpace(raw.Source.Name) == "" {
		return nil, &RejectionError{Reason: ReasonMissingField, Field: "source.name"}
	}

	publishedAt, err := time.Parse(time.RFC3339, raw.PublishedAt)
	if err != nil {
		return nil, &RejectionError{Reason: ReasonBadTimestamp, Field: "publishedAt"}
	}

	return &NormalizedArticle{
		Title:       strings.TrimSpace(raw.Title),
		Description: strings.TrimSpace(raw.Description),
		URL:         raw.URL,
		ImageURL:    raw.Image,
		PublishedAt: publishedAt,
		SourceName:  strings.TrimSpace(raw.Source.Name),
	}, nil
}
