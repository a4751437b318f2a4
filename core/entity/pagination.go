package entity

type Pagination[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total_items"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices an in-memory result set. Out of range pages return an
// empty page, never an error.
func Paginate[T any](items []T, pageNumber, pageSize int) *Pagination[T] {
	total := len(items)
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	start := (pageNumber - 1) * pageSize
	if start > total || start < 0 {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	page := make([]T, end-start)
	copy(page, items[start:end])

	return &Pagination[T]{
		Items:      page,
		TotalItems: total,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
