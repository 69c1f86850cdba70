package domain

import "errors"

// Common domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrDuplicateUser = errors.New("email already registered")
)

// ListQuery carries the shared list-endpoint parameters: free-text
// search, a category/status filter ("all" disables it) and paging.
type ListQuery struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}
