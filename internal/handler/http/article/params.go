package article

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"news-aggregator/internal/common/pagination"
	"news-aggregator/internal/pkg/validation"
	artUC "news-aggregator/internal/usecase/article"
)

// parsePageAndSort reads the pagination and sort query parameters shared by
// the list and search endpoints. Sort values are validated later by the use
// case against its whitelist.
func parsePageAndSort(r *http.Request, cfg pagination.Config) (artUC.SearchInput, error) {
	params, err := pagination.ParseQueryParams(r, cfg)
	if err != nil {
		return artUC.SearchInput{}, err
	}

	return artUC.SearchInput{
		Page:    params,
		SortBy:  r.URL.Query().Get("sortBy"),
		SortDir: r.URL.Query().Get("sortDir"),
	}, nil
}

// parseFilters reads the optional search filter parameters into the input.
// Absent parameters leave the corresponding filter nil.
func parseFilters(r *http.Request, input *artUC.SearchInput) error {
	q := r.URL.Query()

	if kw := q.Get("keyword"); kw != "" {
		input.Keyword = &kw
	}

	if s := q.Get("categoryId"); s != "" {
		id, err := parsePositiveID(s)
		if err != nil {
			return fmt.Errorf("invalid categoryId: %w", err)
		}
		input.CategoryID = &id
	}

	if s := q.Get("sourceId"); s != "" {
		id, err := parsePositiveID(s)
		if err != nil {
			return fmt.Errorf("invalid sourceId: %w", err)
		}
		input.SourceID = &id
	}

	if s := q.Get("startDate"); s != "" {
		t, err := validation.ParseDateISO8601(s)
		if err != nil {
			return fmt.Errorf("invalid startDate: %w", err)
		}
		input.StartDate = t
	}

	if s := q.Get("endDate"); s != "" {
		t, err := validation.ParseEndDateISO8601(s)
		if err != nil {
			return fmt.Errorf("invalid endDate: %w", err)
		}
		input.EndDate = t
	}

	return nil
}

func parsePositiveID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.New("must be a valid integer")
	}
	if id <= 0 {
		return 0, errors.New("must be positive")
	}
	return id, nil
}
