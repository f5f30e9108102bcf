// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Article,
// Source and Category, along with their validation rules and domain errors.
package entity

import "time"

// Article represents a news article in the system.
// Every article belongs to exactly one Source and one Category. The URL is the
// natural key used for deduplication and is unique across all articles.
type Article struct {
	ID          int64
	SourceID    int64
	CategoryID  int64
	Title       string
	Description string
	URL         string
	ImageURL    string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
