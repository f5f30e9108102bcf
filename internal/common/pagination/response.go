package pagination

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g., ArticleDTO).
//
// Example usage:
//
//	type ArticleDTO struct { ... }
//	response := pagination.NewResponse(articles, metadata)
//	// response is of type pagination.Response[ArticleDTO]
type Response[T any] struct {
	Content       []T   `json:"content"` // Data items for the current page
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// NewResponse creates a new paginated response with data and metadata.
// A nil data slice is replaced with an empty one so the JSON content field
// is always an array.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	if data == nil {
		data = []T{}
	}
	return Response[T]{
		Content:       data,
		PageNumber:    metadata.PageNumber,
		PageSize:      metadata.PageSize,
		TotalElements: metadata.TotalElements,
		TotalPages:    metadata.TotalPages,
		Last:          metadata.Last,
	}
}
