package usecase

import (
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/listview"
)

// paginate runs the shared filter/window pipeline over a freshly
// fetched collection and shapes the result for the list endpoints.
// Pages are 1-based on the wire and 0-based inside the view.
func paginate[T any](records []T, q domain.ListQuery, opts listview.Options[T]) *domain.PaginatedResult[T] {
	view := listview.NewView(opts)
	view.Replace(records)
	view.ApplyFilters(q.Search, q.Category)

	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = listview.DefaultPageSize
	}
	view.SetPage(page-1, size)

	total := view.Len()
	totalPages := (total + size - 1) / size

	return &domain.PaginatedResult[T]{
		Data:       view.Window(),
		Total:      int64(total),
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}
}
