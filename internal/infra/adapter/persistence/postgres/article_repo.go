package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"news-aggregator/internal/domain/entity"
	"news-aggregator/internal/pkg/search"
	"news-aggregator/internal/repository"
)

const articleColumns = `id, source_id, category_id, title, description, url, image_url, published_at, created_at, updated_at`

type ArticleRepo struct {
	db           DBTX
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func scanArticle(row interface{ Scan(dest ...any) error }) (*entity.Article, error) {
	var article entity.Article
	var description, imageURL sql.NullString
	err := row.Scan(&article.ID, &article.SourceID, &article.CategoryID,
		&article.Title, &description, &article.URL, &imageURL,
		&article.PublishedAt, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, err
	}
	article.Description = description.String
	article.ImageURL = imageURL.String
	return &article, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) GetWithRefs(ctx context.Context, id int64) (*repository.ArticleWithRefs, error) {
	const query = `
SELECT a.id, a.source_id, a.category_id, a.title, a.description, a.url, a.image_url,
       a.published_at, a.created_at, a.updated_at, s.name AS source_name, c.name AS category_name
FROM articles a
INNER JOIN sources s ON a.source_id = s.id
INNER JOIN categories c ON a.category_id = c.id
WHERE a.id = $1
LIMIT 1`
	var article entity.Article
	var description, imageURL sql.NullString
	var sourceName, categoryName string
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.SourceID, &article.CategoryID, &article.Title,
			&description, &article.URL, &imageURL, &article.PublishedAt,
			&article.CreatedAt, &article.UpdatedAt, &sourceName, &categoryName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetWithRefs: %w", err)
	}
	article.Description = description.String
	article.ImageURL = imageURL.String
	return &repository.ArticleWithRefs{
		Article:      &article,
		SourceName:   sourceName,
		CategoryName: categoryName,
	}, nil
}

func (repo *ArticleRepo) GetByURL(ctx context.Context, url string) (*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE url = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, url))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByURL: %w", err)
	}
	return article, nil
}

// ExistsByURLBatch checks all URLs in a single round trip to avoid an N+1
// query pattern when deduplicating a whole feed page.
func (repo *ArticleRepo) ExistsByURLBatch(ctx context.Context, urls []string) (map[string]bool, error) {
	if len(urls) == 0 {
		return make(map[string]bool), nil
	}

	const query = `SELECT url FROM articles WHERE url = ANY($1)`
	rows, err := repo.db.QueryContext(ctx, query, pq.Array(urls))
	if err != nil {
		return nil, fmt.Errorf("ExistsByURLBatch: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]bool)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("ExistsByURLBatch: Scan: %w", err)
		}
		result[url] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ExistsByURLBatch: rows.Err: %w", err)
	}

	return result, nil
}

// Create inserts a new article. ON CONFLICT DO NOTHING makes the database
// uniqueness constraint on url the final arbiter: losing a race against a
// concurrent writer surfaces as entity.ErrAlreadyExists, never as a failed
// transaction.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (source_id, category_id, title, description, url, image_url, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (url) DO NOTHING
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		article.SourceID, article.CategoryID, article.Title,
		nullIfEmpty(article.Description), article.URL, nullIfEmpty(article.ImageURL),
		article.PublishedAt,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("Create: url %q: %w", article.URL, entity.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) CountWithFilters(ctx context.Context, filters repository.ArticleSearchFilters) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, search.DefaultSearchTimeout)
	defer cancel()

	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "")
	query := "SELECT COUNT(*) FROM articles"
	if whereClause != "" {
		query += " " + whereClause
	}

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountWithFilters: %w", err)
	}
	return count, nil
}

// SearchWithFilters returns one page of articles matching the filters,
// ordered by sort and joined with source and category names.
func (repo *ArticleRepo) SearchWithFilters(ctx context.Context, filters repository.ArticleSearchFilters, sort repository.ArticleSort, offset, limit int) ([]repository.ArticleWithRefs, error) {
	ctx, cancel := context.WithTimeout(ctx, search.DefaultSearchTimeout)
	defer cancel()

	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "a")
	orderClause := repo.queryBuilder.BuildOrderByClause(sort, "a")

	paramIndex := len(args) + 1
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT a.id, a.source_id, a.category_id, a.title, a.description, a.url, a.image_url,
       a.published_at, a.created_at, a.updated_at, s.name AS source_name, c.name AS category_name
FROM articles a
INNER JOIN sources s ON a.source_id = s.id
INNER JOIN categories c ON a.category_id = c.id
%s
%s
LIMIT $%d OFFSET $%d`, whereClause, orderClause, paramIndex, paramIndex+1)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("SearchWithFilters: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithRefs, 0, limit)
	for rows.Next() {
		var article entity.Article
		var description, imageURL sql.NullString
		var sourceName, categoryName string
		if err := rows.Scan(&article.ID, &article.SourceID, &article.CategoryID,
			&article.Title, &description, &article.URL, &imageURL,
			&article.PublishedAt, &article.CreatedAt, &article.UpdatedAt,
			&sourceName, &categoryName); err != nil {
			return nil, fmt.Errorf("SearchWithFilters: Scan: %w", err)
		}
		article.Description = description.String
		article.ImageURL = imageURL.String
		result = append(result, repository.ArticleWithRefs{
			Article:      &article,
			SourceName:   sourceName,
			CategoryName: categoryName,
		})
	}
	return result, rows.Err()
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
