package article

import (
	"errors"
	"net/http"

	"news-aggregator/internal/handler/http/pathutil"
	"news-aggregator/internal/handler/http/respond"
	artUC "news-aggregator/internal/usecase/article"
)

// GetHandler serves single-article retrieval by ID.
type GetHandler struct {
	Svc *artUC.Service
}

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Description  指定されたIDの記事を取得します（ソース名・カテゴリ名を含む）
// @Tags         news
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} DTO "記事詳細"
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/news/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(*item))
}
