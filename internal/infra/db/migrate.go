package db

import "database/sql"

// MigrateUp creates the schema if it does not exist yet.
// The UNIQUE constraints on sources.name, categories.name and articles.url are
// load-bearing: the ingestion path relies on them as the authoritative guard
// against duplicate rows under concurrent writers.
func MigrateUp(database *sql.DB) error {
	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS sources (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    base_url   TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS categories (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id           BIGSERIAL PRIMARY KEY,
    source_id    BIGINT NOT NULL REFERENCES sources(id),
    category_id  BIGINT NOT NULL REFERENCES categories(id),
    title        TEXT NOT NULL,
    description  TEXT,
    url          TEXT NOT NULL UNIQUE,
    image_url    TEXT,
    published_at TIMESTAMPTZ NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// ORDER BY published_at DESC is the default sort on every listing
		`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_source_id ON articles(source_id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category_id ON articles(category_id)`,
	}
	for _, idx := range indexes {
		if _, err := database.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE keyword search; failure is non-fatal
	// (extension may already exist or the role may lack privileges).
	_, _ = database.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_description_gin ON articles USING gin(description gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		_, _ = database.Exec(idx)
	}

	return nil
}
