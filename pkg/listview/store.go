package listview

import (
	"context"
	"sync"
)

// Store wraps a View with a mutex and a monotonic load sequence so that
// overlapping loads cannot commit out of order: only the latest issued
// Load is allowed to replace the lists, regardless of completion order.
type Store[T any] struct {
	mu   sync.Mutex
	seq  uint64
	view *View[T]
}

func NewStore[T any](opts Options[T]) *Store[T] {
	return &Store[T]{view: NewView[T](opts)}
}

// Load fetches the full collection and commits it to the view. A fetch
// error commits an empty list (the caller re-triggers explicitly; there
// is no automatic retry). Either way the commit is dropped when a newer
// Load was issued while this one was in flight.
func (s *Store[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	records, err := fetch(ctx)
	if err != nil {
		records = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		// A later load owns the view now; this response must not win.
		return err
	}
	s.view.Replace(records)
	return err
}

// Snapshot returns a copy of the canonical list.
func (s *Store[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.view.canonical))
	copy(out, s.view.canonical)
	return out
}

// ApplyFilters recomputes the filtered list under the store's lock.
func (s *Store[T]) ApplyFilters(search, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.ApplyFilters(search, category)
}

// Window returns the current page window under the store's lock.
func (s *Store[T]) Window() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Window()
}
