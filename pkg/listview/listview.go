// Package listview implements the in-memory record view shared by every
// list endpoint: a canonical (as-fetched) collection, a filtered
// projection over it, and a paginated window into the filtered list.
package listview

import "strings"

// AllCategories is the sentinel category that disables category filtering.
const AllCategories = "all"

// DefaultPageSize matches the page size the UI paginator starts with.
const DefaultPageSize = 10

// Options configures how records of one entity type are matched.
type Options[T any] struct {
	// SearchFields returns the designated text fields searched
	// case-insensitively. Implementations must tolerate zero values.
	SearchFields func(T) []string
	// CategoryOf returns the record's category (or computed status) used
	// by the equality filter. Nil disables category filtering.
	CategoryOf func(T) string
}

// View holds a canonical list and a filtered projection of it.
// Filtering always resets the page index; paging never re-filters.
type View[T any] struct {
	opts      Options[T]
	canonical []T
	filtered  []T
	search    string
	category  string
	pageIndex int
	pageSize  int
}

func NewView[T any](opts Options[T]) *View[T] {
	return &View[T]{
		opts:     opts,
		category: AllCategories,
		pageSize: DefaultPageSize,
	}
}

// Replace swaps in a freshly fetched collection, replacing both the
// canonical list and the filtered list. Active filters are kept but not
// re-applied until the next ApplyFilters call, and the page index is
// left alone.
func (v *View[T]) Replace(records []T) {
	v.canonical = make([]T, len(records))
	copy(v.canonical, records)
	v.filtered = make([]T, len(records))
	copy(v.filtered, records)
}

// ApplyFilters recomputes the filtered list from the canonical list:
// category equality first (skipped for the "all" sentinel), then a
// case-insensitive substring match over the designated search fields.
// The page index is always reset to 0. Calling it twice with identical
// arguments yields an identical filtered list.
func (v *View[T]) ApplyFilters(search, category string) {
	v.search = search
	v.category = category

	filtered := make([]T, 0, len(v.canonical))
	term := strings.ToLower(search)
	for _, rec := range v.canonical {
		if !v.matchCategory(rec, category) {
			continue
		}
		if term != "" && !v.matchSearch(rec, term) {
			continue
		}
		filtered = append(filtered, rec)
	}

	v.filtered = filtered
	v.pageIndex = 0
}

func (v *View[T]) matchCategory(rec T, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	if v.opts.CategoryOf == nil {
		// A record that cannot answer the predicate is excluded, not an error
		return false
	}
	return v.opts.CategoryOf(rec) == category
}

func (v *View[T]) matchSearch(rec T, loweredTerm string) bool {
	if v.opts.SearchFields == nil {
		return false
	}
	for _, field := range v.opts.SearchFields(rec) {
		if strings.Contains(strings.ToLower(field), loweredTerm) {
			return true
		}
	}
	return false
}

// SetPage mutates paging only; it never re-filters.
func (v *View[T]) SetPage(index, size int) {
	if index < 0 {
		index = 0
	}
	if size < 1 {
		size = DefaultPageSize
	}
	v.pageIndex = index
	v.pageSize = size
}

// Page returns the current page index and size.
func (v *View[T]) Page() (index, size int) {
	return v.pageIndex, v.pageSize
}

// Window returns filtered[pageIndex*pageSize : pageIndex*pageSize+pageSize],
// clamped to the filtered list's bounds.
func (v *View[T]) Window() []T {
	start := v.pageIndex * v.pageSize
	if start >= len(v.filtered) {
		return []T{}
	}
	end := start + v.pageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return v.filtered[start:end]
}

// Filtered returns the current filtered list.
func (v *View[T]) Filtered() []T {
	return v.filtered
}

// Len returns the length of the filtered list.
func (v *View[T]) Len() int {
	return len(v.filtered)
}
