package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"news-aggregator/internal/domain/entity"
	"news-aggregator/internal/repository"
)

type CategoryRepo struct {
	db DBTX
}

func NewCategoryRepo(db DBTX) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	const query = `
SELECT id, name, created_at, updated_at
FROM categories
WHERE id = $1
LIMIT 1`
	var category entity.Category
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&category.ID, &category.Name, &category.CreatedAt, &category.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &category, nil
}

func (repo *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	const query = `
SELECT id, name, created_at, updated_at
FROM categories
WHERE name = $1
LIMIT 1`
	var category entity.Category
	err := repo.db.QueryRowContext(ctx, query, name).
		Scan(&category.ID, &category.Name, &category.CreatedAt, &category.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByName: %w", err)
	}
	return &category, nil
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	const query = `
SELECT id, name, created_at, updated_at
FROM categories
ORDER BY name ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name,
			&category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	const query = `
INSERT INTO categories (name)
VALUES ($1)
ON CONFLICT (name) DO NOTHING
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query, category.Name).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("Create: category %q: %w", category.Name, entity.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
