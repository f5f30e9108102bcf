package category

import (
	"net/http"

	"news-aggregator/internal/handler/http/respond"
	catUC "news-aggregator/internal/usecase/category"
)

// ListHandler serves the read-only category listing.
type ListHandler struct {
	Svc *catUC.Service
}

// ServeHTTP カテゴリ一覧取得
// @Summary      カテゴリ一覧取得
// @Description  分類器が付与したカテゴリを名前順で取得します
// @Tags         categories
// @Produce      json
// @Success      200 {array} DTO "カテゴリ一覧"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/categories [get]
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
			CreatedAt: e.CreatedAt,
		})
	}
	respond.JSON(w, http.StatusOK, out)
}
