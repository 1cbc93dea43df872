package response

// PageResponse is the standard wrapper for list endpoints.
type PageResponse[T any] struct {
	Total  int  `json:"total"`
	Limit  *int `json:"limit,omitempty"`
	Offset *int `json:"offset,omitempty"`
	Items  []T  `json:"items"`
}

// NewPageResponse is a helper to quickly create a response
func NewPageResponse[T any](items []T, total int, limit, offset *int) PageResponse[T] {
	// Handle empty slice to avoid JSON outputting null
	if items == nil {
		items = make([]T, 0)
	}

	// Offset has no meaning without a limit
	if limit == nil {
		offset = nil
	}

	return PageResponse[T]{
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Items:  items,
	}
}
