package article

import (
	"net/http"
	"time"

	"news-aggregator/internal/common/pagination"
	"news-aggregator/internal/handler/http/respond"
	"news-aggregator/internal/observability/logging"
	artUC "news-aggregator/internal/usecase/article"
)

// ListHandler serves the unfiltered, paginated article listing.
type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得（ページネーション対応）
// @Description  登録されている記事をページ単位で取得します。
// @Tags         news
// @Produce      json
// @Param        page    query int    false "ページ番号 (0-based)" default(0) minimum(0)
// @Param        size    query int    false "1ページあたりの件数" default(10) minimum(1) maximum(100)
// @Param        sortBy  query string false "ソートキー" Enums(publishedAt, createdAt, title, id)
// @Param        sortDir query string false "ソート方向" Enums(asc, desc)
// @Success      200 {object} pagination.Response[DTO] "ページネーション付き記事一覧"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	// リクエストスコープのロガー（request_id付き）はミドルウェアが載せる
	logger := logging.FromContext(ctx)

	input, err := parsePageAndSort(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters",
			"error", err.Error())
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Search(ctx, input)
	if err != nil {
		code := statusForSearchError(err)
		if code >= 500 {
			logger.Error("failed to list articles",
				"error", err.Error(),
				"page", input.Page.Page,
				"size", input.Page.Size)
		}
		respond.SafeError(w, code, err)
		return
	}

	response := pagination.NewResponse(toDTOs(result.Articles), result.Metadata)

	logger.Info("article list served",
		"page", result.Metadata.PageNumber,
		"size", result.Metadata.PageSize,
		"returned_count", len(response.Content),
		"duration_ms", time.Since(startTime).Milliseconds())

	respond.JSON(w, http.StatusOK, response)
}
