package pagination

// Metadata contains pagination metadata included in API responses.
// Field names mirror the page envelope the frontend consumes.
type Metadata struct {
	TotalElements int64 `json:"totalElements"` // Total number of items across all pages
	PageNumber    int   `json:"pageNumber"`    // Current page number (0-based)
	PageSize      int   `json:"pageSize"`      // Items per page
	TotalPages    int   `json:"totalPages"`    // Calculated total number of pages
	Last          bool  `json:"last"`          // Whether this is the final page
}

// NewMetadata builds the metadata for one page of a result set.
func NewMetadata(total int64, page, size int) Metadata {
	return Metadata{
		TotalElements: total,
		PageNumber:    page,
		PageSize:      size,
		TotalPages:    CalculateTotalPages(total, size),
		Last:          IsLastPage(page, total, size),
	}
}
