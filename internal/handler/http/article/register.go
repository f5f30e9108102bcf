package article

import (
	"net/http"

	"news-aggregator/internal/common/pagination"
	artUC "news-aggregator/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// It sets up routes for listing, searching, and retrieving articles.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config) {
	mux.Handle("GET /api/news", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
	})
	mux.Handle("GET /api/news/search", SearchHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
	})
	mux.Handle("GET /api/news/", GetHandler{Svc: svc})
}
