package state

import (
	"context"
	"sync"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
	"github.com/tuguldur-s/travelfeed/internal/timex"
)

// SearchFilters is the free-text query plus filter selections sent as one
// server query.
type SearchFilters struct {
	Query      string
	Type       string
	Category   string
	PriceRange string
	Location   string
	SortBy     string
}

func defaultSearchFilters() SearchFilters {
	return SearchFilters{Type: "posts", SortBy: "latest"}
}

type searchSlice struct {
	mu sync.Mutex
	status
	results  api.SearchPage
	filters  SearchFilters
	page     int
	limit    int
	debounce *timex.Debouncer
}

// SearchState is a point-in-time snapshot of the search slice.
type SearchState struct {
	Results api.SearchPage
	Filters SearchFilters
	Page    int
	Loading bool
	Err     string
}

func (s *Store) SearchState() SearchState {
	s.search.mu.Lock()
	defer s.search.mu.Unlock()
	return SearchState{
		Results: s.search.results,
		Filters: s.search.filters,
		Page:    s.search.page,
		Loading: s.search.Loading,
		Err:     s.search.Err,
	}
}

// UpdateSearchFilters applies changes and resets pagination to page 1, so
// result sets from different filter combinations never mix.
func (s *Store) UpdateSearchFilters(change func(*SearchFilters)) {
	s.search.mu.Lock()
	change(&s.search.filters)
	s.search.page = 1
	s.search.mu.Unlock()
}

// ClearSearchFilters restores the defaults.
func (s *Store) ClearSearchFilters() {
	s.search.mu.Lock()
	s.search.filters = defaultSearchFilters()
	s.search.page = 1
	s.search.mu.Unlock()
}

// Search executes the current filters. Every fulfilled response fully
// replaces the previous result set and pagination metadata.
func (s *Store) Search(ctx context.Context) error {
	s.search.mu.Lock()
	f := s.search.filters
	q := api.SearchQuery{
		Query:      f.Query,
		Type:       f.Type,
		Category:   f.Category,
		PriceRange: f.PriceRange,
		Location:   f.Location,
		SortBy:     f.SortBy,
		Page:       s.search.page,
		Limit:      s.search.limit,
	}
	s.search.begin()
	s.search.mu.Unlock()

	page, err := s.api.Search(ctx, q)
	if err != nil {
		s.search.mu.Lock()
		s.search.fail(err)
		s.search.mu.Unlock()
		return err
	}

	s.search.mu.Lock()
	s.search.results = *page
	s.search.done()
	s.search.mu.Unlock()
	return nil
}

// SearchQueryInput feeds one keystroke-driven query. The actual search is
// debounced so only the last query within the window is sent.
func (s *Store) SearchQueryInput(text string) {
	s.search.mu.Lock()
	s.search.filters.Query = text
	s.search.page = 1
	d := s.search.debounce
	s.search.mu.Unlock()

	d.Trigger(func() {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		if err := s.Search(ctx); err != nil {
			s.log.Warn(ctx, "debounced search failed", "error", err)
		}
	})
}

// NextSearchPage advances pagination while more pages exist.
func (s *Store) NextSearchPage(ctx context.Context) error {
	s.search.mu.Lock()
	p := s.search.results.Pagination
	if p.Page == 0 || p.Page >= p.Pages {
		s.search.mu.Unlock()
		return nil
	}
	s.search.page = p.Page + 1
	s.search.mu.Unlock()
	return s.Search(ctx)
}
