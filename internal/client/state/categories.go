package state

import (
	"context"
	"slices"
	"sync"

	"github.com/tuguldur-s/travelfeed/internal/client/models"
)

type categoriesSlice struct {
	mu sync.Mutex
	status
	categories []models.Category
}

// CategoriesState is a point-in-time snapshot of the categories slice.
type CategoriesState struct {
	Categories []models.Category
	Loading    bool
	Err        string
}

func (s *Store) CategoriesState() CategoriesState {
	s.categories.mu.Lock()
	defer s.categories.mu.Unlock()
	return CategoriesState{Categories: slices.Clone(s.categories.categories), Loading: s.categories.Loading, Err: s.categories.Err}
}

// FetchCategories replaces the category list with the server's.
func (s *Store) FetchCategories(ctx context.Context) error {
	s.categories.mu.Lock()
	s.categories.begin()
	s.categories.mu.Unlock()

	categories, err := s.api.FetchCategories(ctx)
	if err != nil {
		s.categories.mu.Lock()
		s.categories.fail(err)
		s.categories.mu.Unlock()
		return err
	}

	s.categories.mu.Lock()
	s.categories.categories = categories
	s.categories.done()
	s.categories.mu.Unlock()
	return nil
}
