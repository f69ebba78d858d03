package utils

// Pagination describes the window applied to a list endpoint.
type Pagination struct {
	TotalItems int `json:"total_items"`
	Skip       int `json:"skip"`
	Limit      int `json:"limit"`
}

// CreatePagination creates a Pagination object, normalizing the window.
func CreatePagination(totalItems, skip, limit int) *Pagination {
	if limit <= 0 {
		limit = 100 // Default window
	}
	if skip < 0 {
		skip = 0
	}
	return &Pagination{
		TotalItems: totalItems,
		Skip:       skip,
		Limit:      limit,
	}
}

// Window slices a result set to the skip/limit window without running past
// the end.
func Window[T any](items []T, skip, limit int) []T {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
