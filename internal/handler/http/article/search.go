package article

import (
	"errors"
	"net/http"

	"news-aggregator/internal/common/pagination"
	"news-aggregator/internal/handler/http/respond"
	artUC "news-aggregator/internal/usecase/article"
)

// SearchHandler serves the filtered article search endpoint.
type SearchHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP 記事検索
// @Summary      記事検索（フィルタ + ページネーション）
// @Description  キーワード・カテゴリ・ソース・日付範囲で記事を検索します。指定されたフィルタはAND結合されます。
// @Tags         news
// @Produce      json
// @Param        keyword    query string false "タイトル・本文の部分一致キーワード"
// @Param        categoryId query int    false "カテゴリIDでフィルタ"
// @Param        sourceId   query int    false "ソースIDでフィルタ"
// @Param        startDate  query string false "公開日時の開始（ISO 8601）"
// @Param        endDate    query string false "公開日時の終了（ISO 8601）"
// @Param        page       query int    false "ページ番号（0-based）"
// @Param        size       query int    false "1ページあたりの件数（最大: 100）"
// @Param        sortBy     query string false "ソートキー" Enums(publishedAt, createdAt, title, id)
// @Param        sortDir    query string false "ソート方向" Enums(asc, desc)
// @Success      200 {object} pagination.Response[DTO] "検索結果"
// @Failure      400 {string} string "Bad request"
// @Failure      404 {string} string "Unknown category or source"
// @Failure      500 {string} string "Server error"
// @Router       /api/news/search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	input, err := parsePageAndSort(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := parseFilters(r, &input); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Search(r.Context(), input)
	if err != nil {
		respond.SafeError(w, statusForSearchError(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, pagination.NewResponse(toDTOs(result.Articles), result.Metadata))
}

// statusForSearchError maps use case search errors onto HTTP status codes.
// Reference resolution failures are 404s, input problems 400s, everything
// else a 500.
func statusForSearchError(err error) int {
	switch {
	case errors.Is(err, artUC.ErrCategoryNotFound),
		errors.Is(err, artUC.ErrSourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, artUC.ErrInvalidDateRange),
		errors.Is(err, artUC.ErrInvalidSort):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
