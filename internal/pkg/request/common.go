package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// WindowParams are the optional paging and sorting query parameters of a
// list endpoint. Offset has no effect unless Limit is set.
type WindowParams struct {
	Limit     *int   `form:"limit" binding:"omitempty,min=1"`
	Offset    *int   `form:"offset" binding:"omitempty,min=0"`
	OrderBy   string `form:"order_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=ASC DESC asc desc"`
}

// NonEmpty returns nil for a missing or empty query value.
func NonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
