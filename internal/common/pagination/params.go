package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page int // 0-based page number
	Size int // Items per page
}

// ParseQueryParams parses pagination parameters from HTTP request query string.
// Returns Params with defaults if parameters are missing.
//
// Query parameters:
//   - page: Page number (0-based, must be a non-negative integer)
//   - size: Items per page (must be between 1 and config.MaxSize)
//
// Returns an error if parameters are present but invalid.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page: config.DefaultPage,
		Size: config.DefaultSize,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 0 {
			return params, fmt.Errorf("invalid query parameter: page must be a non-negative integer")
		}
		params.Page = page
	}

	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 || size > config.MaxSize {
			return params, fmt.Errorf("invalid query parameter: size must be between 1 and %d", config.MaxSize)
		}
		params.Size = size
	}

	return params, nil
}

// Validate validates pagination parameters against the configuration.
// Returns an error if:
//   - page is negative
//   - size is less than 1 or greater than config.MaxSize
func (p Params) Validate(config Config) error {
	if p.Page < 0 {
		return fmt.Errorf("page must be a non-negative integer")
	}
	if p.Size < 1 || p.Size > config.MaxSize {
		return fmt.Errorf("size must be between 1 and %d", config.MaxSize)
	}
	return nil
}

// WithDefaults applies default values from config to Params.
//
// Rules:
//   - If page < 0, set to config.DefaultPage
//   - If size <= 0, set to config.DefaultSize
//   - If size > config.MaxSize, cap to config.MaxSize
func (p Params) WithDefaults(config Config) Params {
	if p.Page < 0 {
		p.Page = config.DefaultPage
	}
	if p.Size <= 0 {
		p.Size = config.DefaultSize
	}
	if p.Size > config.MaxSize {
		p.Size = config.MaxSize
	}
	return p
}
