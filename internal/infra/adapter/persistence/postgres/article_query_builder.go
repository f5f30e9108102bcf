// Package postgres provides PostgreSQL implementations of the repository
// interfaces using hand-written SQL over database/sql.
package postgres

import (
	"fmt"
	"strings"

	"news-aggregator/internal/pkg/search"
	"news-aggregator/internal/repository"
)

// Sortable article columns, keyed by the column name the repository layer
// accepts. Anything outside this map is rejected before reaching SQL, which
// keeps the dynamically composed ORDER BY injection-safe.
var sortableArticleColumns = map[string]bool{
	"published_at": true,
	"created_at":   true,
	"title":        true,
	"id":           true,
}

// ArticleQueryBuilder builds WHERE and ORDER BY clauses for article search.
// The builder is shared between COUNT and SELECT queries so both always see
// the same predicate set. Each present filter contributes exactly one
// AND-combined condition; absent filters contribute nothing.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for article search.
// Returns an empty clause when no filters are set. PostgreSQL-specific: uses
// ILIKE for case-insensitive matching and $N placeholders.
func (qb *ArticleQueryBuilder) BuildWhereClause(filters repository.ArticleSearchFilters, tableAlias string) (clause string, args []interface{}) {
	var conditions []string
	col := func(name string) string {
		if tableAlias != "" {
			return tableAlias + "." + name
		}
		return name
	}
	paramIndex := 1

	// Keyword searches title OR description; the OR pair is grouped so it
	// AND-combines cleanly with the remaining filters.
	if filters.Keyword != nil {
		pattern := search.EscapeILIKE(*filters.Keyword)
		conditions = append(conditions, fmt.Sprintf("(%s ILIKE $%d OR %s ILIKE $%d)",
			col("title"), paramIndex, col("description"), paramIndex))
		args = append(args, pattern)
		paramIndex++
	}

	if filters.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("category_id"), paramIndex))
		args = append(args, *filters.CategoryID)
		paramIndex++
	}

	if filters.SourceID != nil {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("source_id"), paramIndex))
		args = append(args, *filters.SourceID)
		paramIndex++
	}

	if filters.From != nil {
		conditions = append(conditions, fmt.Sprintf("%s >= $%d", col("published_at"), paramIndex))
		args = append(args, *filters.From)
		paramIndex++
	}
	if filters.To != nil {
		conditions = append(conditions, fmt.Sprintf("%s <= $%d", col("published_at"), paramIndex))
		args = append(args, *filters.To)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// BuildOrderByClause builds the ORDER BY clause for the given sort.
// Unknown columns fall back to published_at so a bad sort can never reach the
// database; callers validate user input before it gets here.
func (qb *ArticleQueryBuilder) BuildOrderByClause(sort repository.ArticleSort, tableAlias string) string {
	column := sort.Column
	if !sortableArticleColumns[column] {
		column = "published_at"
	}
	if tableAlias != "" {
		column = tableAlias + "." + column
	}
	direction := "ASC"
	if sort.Desc {
		direction = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}
