package source

import (
	"net/http"

	srcUC "news-aggregator/internal/usecase/source"
)

// Register registers the source HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *srcUC.Service) {
	mux.Handle("GET /api/sources", ListHandler{Svc: svc})
}
