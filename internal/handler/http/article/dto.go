// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, searching, and retrieving articles.
package article

import (
	"time"

	"news-aggregator/internal/repository"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID           int64     `json:"id" example:"1"`
	Title        string    `json:"title" example:"Go 1.25 released"`
	Description  string    `json:"description" example:"The Go team has released Go 1.25 with..."`
	URL          string    `json:"url" example:"https://example.com/article/1"`
	ImageURL     string    `json:"imageUrl,omitempty" example:"https://example.com/image.jpg"`
	PublishedAt  time.Time `json:"publishedAt" example:"2025-10-26T10:00:00Z"`
	SourceName   string    `json:"sourceName" example:"Example News"`
	CategoryName string    `json:"categoryName" example:"Technology"`
	CreatedAt    time.Time `json:"createdAt" example:"2025-10-26T12:00:00Z"`
}

// toDTO converts an article with resolved reference names into its JSON form.
func toDTO(item repository.ArticleWithRefs) DTO {
	return DTO{
		ID:           item.Article.ID,
		Title:        item.Article.Title,
		Description:  item.Article.Description,
		URL:          item.Article.URL,
		ImageURL:     item.Article.ImageURL,
		PublishedAt:  item.Article.PublishedAt,
		SourceName:   item.SourceName,
		CategoryName: item.CategoryName,
		CreatedAt:    item.Article.CreatedAt,
	}
}

// toDTOs converts a page of search results.
func toDTOs(items []repository.ArticleWithRefs) []DTO {
	out := make([]DTO, 0, len(items))
	for _, item := range items {
		out = append(out, toDTO(item))
	}
	return out
}
