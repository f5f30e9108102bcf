package category

import (
	"net/http"

	catUC "news-aggregator/internal/usecase/category"
)

// Register registers the category HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *catUC.Service) {
	mux.Handle("GET /api/categories", ListHandler{Svc: svc})
}
