package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"news-aggregator/internal/domain/entity"
	"news-aggregator/internal/repository"
)

type SourceRepo struct {
	db DBTX
}

func NewSourceRepo(db DBTX) repository.SourceRepository {
	return &SourceRepo{db: db}
}

func (repo *SourceRepo) Get(ctx context.Context, id int64) (*entity.Source, error) {
	const query = `
SELECT id, name, base_url, created_at, updated_at
FROM sources
WHERE id = $1
LIMIT 1`
	source, err := scanSource(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return source, nil
}

func (repo *SourceRepo) GetByName(ctx context.Context, name string) (*entity.Source, error) {
	const query = `
SELECT id, name, base_url, created_at, updated_at
FROM sources
WHERE name = $1
LIMIT 1`
	source, err := scanSource(repo.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByName: %w", err)
	}
	return source, nil
}

func (repo *SourceRepo) List(ctx context.Context) ([]*entity.Source, error) {
	const query = `
SELECT id, name, base_url, created_at, updated_at
FROM sources
ORDER BY name ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sources []*entity.Source
	for rows.Next() {
		var source entity.Source
		if err := rows.Scan(&source.ID, &source.Name, &source.BaseURL,
			&source.CreatedAt, &source.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		sources = append(sources, &source)
	}
	return sources, rows.Err()
}

// Create inserts a source by name. A concurrent insert of the same name is
// reported as entity.ErrAlreadyExists so the caller can re-read the winner
// without aborting the surrounding transaction.
func (repo *SourceRepo) Create(ctx context.Context, source *entity.Source) error {
	const query = `
INSERT INTO sources (name, base_url)
VALUES ($1, $2)
ON CONFLICT (name) DO NOTHING
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query, source.Name, source.BaseURL).
		Scan(&source.ID, &source.CreatedAt, &source.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("Create: source %q: %w", source.Name, entity.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func scanSource(row interface{ Scan(dest ...any) error }) (*entity.Source, error) {
	var source entity.Source
	err := row.Scan(&source.ID, &source.Name, &source.BaseURL,
		&source.CreatedAt, &source.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &source, nil
}
