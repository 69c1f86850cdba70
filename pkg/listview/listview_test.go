package listview_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go-portfolio-backend/pkg/listview"

	"github.com/stretchr/testify/assert"
)

type item struct {
	Name     string
	Category string
}

func itemOptions() listview.Options[item] {
	return listview.Options[item]{
		SearchFields: func(i item) []string { return []string{i.Name} },
		CategoryOf:   func(i item) string { return i.Category },
	}
}

func sampleItems() []item {
	return []item{
		{"Go", "Backend"},
		{"Angular", "Frontend"},
		{"PostgreSQL", "Banco de Dados"},
		{"Gin", "Backend"},
		{"goroutines", "Backend"},
	}
}

func TestViewFiltering(t *testing.T) {
	t.Run("filtered list is always a subset of canonical", func(t *testing.T) {
		v := listview.NewView(itemOptions())
		v.Replace(sampleItems())
		v.ApplyFilters("go", "all")

		canonical := map[string]bool{}
		for _, i := range sampleItems() {
			canonical[i.Name] = true
		}
		for _, i := range v.Filtered() {
			assert.True(t, canonical[i.Name])
		}
	})

	t.Run("category equality and search combine", func(t *testing.T) {
		v := listview.NewView(itemOptions())
		v.Replace(sampleItems())

		v.ApplyFilters("", "Backend")
		assert.Equal(t, 3, v.Len())

		v.ApplyFilters("go", "Backend")
		assert.Equal(t, 2, v.Len()) // Go, goroutines

		v.ApplyFilters("go", "all")
		assert.Equal(t, 3, v.Len()) // Go, goroutines, PostgreSQL
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		v := listview.NewView(itemOptions())
		v.Replace(sampleItems())
		v.ApplyFilters("ANGULAR", "all")
		assert.Equal(t, 1, v.Len())
	})

	t.Run("empty category behaves like all", func(t *testing.T) {
		v := listview.NewView(itemOptions())
		v.Replace(sampleItems())
		v.ApplyFilters("", "")
		assert.Equal(t, len(sampleItems()), v.Len())
	})

	t.Run("identical filters are idempotent", func(t *testing.T) {
		v := listview.NewView(itemOptions())
		v.Replace(sampleItems())
		v.ApplyFilters("go", "Backend")
		first := append([]item(nil), v.Filtered()...)
		v.ApplyFilters("go", "Backend")
		assert.Equal(t, first, v.Filtered())
	})

	t.Run("record without category predicate is excluded not an error", func(t *testing.T) {
		v := listview.NewView(listview.Options[item]{
			SearchFields: func(i item) []string { return []string{i.Name} },
		})
		v.Replace(sampleItems())
		v.ApplyFilters("", "Backend")
		assert.Equal(t, 0, v.Len())
	})
}

func TestViewPaging(t *testing.T) {
	t.Run("ApplyFilters resets page index to zero", func(t *testing.T) {
		v := listview.NewView(itemOptions())
		v.Replace(sampleItems())
		v.SetPage(2, 2)
		v.ApplyFilters("", "all")
		index, _ := v.Page()
		assert.Equal(t, 0, index)
	})

	t.Run("window length is min of page size and remainder", func(t *testing.T) {
		v := listview.NewView(itemOptions())
		v.Replace(sampleItems())
		v.ApplyFilters("", "all")

		v.SetPage(0, 2)
		assert.Len(t, v.Window(), 2)

		v.SetPage(2, 2)
		assert.Len(t, v.Window(), 1)

		v.SetPage(3, 2)
		assert.Len(t, v.Window(), 0)
	})

	t.Run("SetPage never re-filters", func(t *testing.T) {
		v := listview.NewView(itemOptions())
		v.Replace(sampleItems())
		v.ApplyFilters("go", "all")
		before := v.Len()
		v.SetPage(0, 1)
		assert.Equal(t, before, v.Len())
	})

	t.Run("negative index and zero size are clamped", func(t *testing.T) {
		v := listview.NewView(itemOptions())
		v.Replace(sampleItems())
		v.ApplyFilters("", "all")
		v.SetPage(-3, 0)
		index, size := v.Page()
		assert.Equal(t, 0, index)
		assert.Equal(t, listview.DefaultPageSize, size)
	})
}

func TestStoreLoad(t *testing.T) {
	t.Run("fetch error commits an empty list and returns the error", func(t *testing.T) {
		s := listview.NewStore(itemOptions())
		err := s.Load(context.Background(), func(context.Context) ([]item, error) {
			return nil, errors.New("boom")
		})
		assert.Error(t, err)
		assert.Empty(t, s.Snapshot())
	})

	t.Run("latest issued load wins regardless of completion order", func(t *testing.T) {
		s := listview.NewStore(itemOptions())

		started := make(chan struct{})
		release := make(chan struct{})
		var wg sync.WaitGroup

		// First load takes its sequence number, then parks until released.
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Load(context.Background(), func(context.Context) ([]item, error) {
				close(started)
				<-release
				return []item{{"stale", "Backend"}}, nil
			})
		}()

		<-started
		_ = s.Load(context.Background(), func(context.Context) ([]item, error) {
			return []item{{"fresh", "Backend"}}, nil
		})

		close(release)
		wg.Wait()

		snapshot := s.Snapshot()
		if assert.Len(t, snapshot, 1) {
			assert.Equal(t, "fresh", snapshot[0].Name)
		}
	})

	t.Run("filters and window work through the store", func(t *testing.T) {
		s := listview.NewStore(itemOptions())
		_ = s.Load(context.Background(), func(context.Context) ([]item, error) {
			return sampleItems(), nil
		})
		s.ApplyFilters("go", "Backend")
		assert.Len(t, s.Window(), 2)
	})
}
