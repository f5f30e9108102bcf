package source

import (
	"net/http"

	"news-aggregator/internal/handler/http/respond"
	srcUC "news-aggregator/internal/usecase/source"
)

// ListHandler serves the read-only source listing.
type ListHandler struct {
	Svc *srcUC.Service
}

// ServeHTTP ソース一覧取得
// @Summary      ソース一覧取得
// @Description  登録されているニュースソースを名前順で取得します
// @Tags         sources
// @Produce      json
// @Success      200 {array} DTO "ソース一覧"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/sources [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, e := range list {
		out = append(out, DTO{
			ID:        e.ID,
			Name:      e.Name,
			BaseURL:   e.BaseURL,
			CreatedAt: e.CreatedAt,
		})
	}
	respond.JSON(w, http.StatusOK, out)
}
