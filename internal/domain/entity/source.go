package entity

import "time"

// Source represents a news outlet articles are attributed to, e.g. "BBC News".
// Names are unique (case-sensitive exact match is used for lookup) and sources
// are created lazily during ingestion the first time a name is seen.
type Source struct {
	ID        int64
	Name      string
	BaseURL   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category represents a topic label assigned to articles by the classifier,
// e.g. "Technology". Names are unique. Like sources, categories are created
// lazily during ingestion and never deleted by the ingestion path.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
