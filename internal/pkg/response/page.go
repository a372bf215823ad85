package response

// Page is the standard wrapper for list endpoints.
type Page[T any] struct {
	Items   []T    `json:"items"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

// NewPage builds a Page, normalizing a nil slice so JSON renders [] not null.
func NewPage[T any](items []T, limit, offset, total int) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return Page[T]{
		Items:  items,
		Limit:  limit,
		Offset: offset,
		Total:  total,
	}
}

// EmptyPage returns a page with no items and an explanatory message, used when
// a caller's scope yields nothing to list rather than an error.
func EmptyPage[T any](limit, offset int, message string) Page[T] {
	p := NewPage([]T{}, limit, offset, 0)
	p.Message = message
	return p
}
