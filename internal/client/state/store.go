package state

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
	"github.com/tuguldur-s/travelfeed/internal/client/models"
	"github.com/tuguldur-s/travelfeed/internal/logging"
	"github.com/tuguldur-s/travelfeed/internal/timex"
)

const (
	// DefaultDoubleTapWindow debounces the double-tap like gesture.
	DefaultDoubleTapWindow = 300 * time.Millisecond

	// DefaultSearchDebounce quiets keystroke-driven search queries.
	DefaultSearchDebounce = 300 * time.Millisecond

	defaultSearchLimit = 10

	// backgroundTimeout bounds fire-and-forget refetches.
	backgroundTimeout = 15 * time.Second
)

// SessionManager is the slice of the session context the store needs.
// *session.Session satisfies it.
type SessionManager interface {
	SetCurrent(ctx context.Context, user *models.User, token string) error
	Clear(ctx context.Context) error
	CurrentUser() *models.User
	CurrentUserID() string
}

type Options struct {
	DoubleTapWindow time.Duration
	SearchDebounce  time.Duration
}

// Store aggregates all slices and the operations that mutate them.
// All exported methods are safe for concurrent use.
type Store struct {
	api  api.Client
	sess SessionManager
	log  logging.Logger

	doubleTapWindow time.Duration

	auth       authSlice
	posts      postsSlice
	products   productsSlice
	categories categoriesSlice
	comments   commentsSlice
	likes      likesSlice
	profile    profileSlice
	search     searchSlice

	// flight collapses concurrent canonical-list refetches.
	flight singleflight.Group
	bg     sync.WaitGroup

	// now is a test seam for the double-tap window.
	now func() time.Time
}

func NewStore(client api.Client, sess SessionManager, log logging.Logger, opts Options) *Store {
	if opts.DoubleTapWindow <= 0 {
		opts.DoubleTapWindow = DefaultDoubleTapWindow
	}
	if opts.SearchDebounce <= 0 {
		opts.SearchDebounce = DefaultSearchDebounce
	}

	s := &Store{
		api:             client,
		sess:            sess,
		log:             log,
		doubleTapWindow: opts.DoubleTapWindow,
		now:             time.Now,
	}
	s.likes.states = make(map[string]likeState)
	s.likes.lastTap = make(map[string]time.Time)
	s.search.filters = defaultSearchFilters()
	s.search.page = 1
	s.search.limit = defaultSearchLimit
	s.search.debounce = timex.NewDebouncer(opts.SearchDebounce)
	return s
}

// Wait blocks until in-flight background refetches settle.
func (s *Store) Wait() {
	s.bg.Wait()
}

// Close cancels pending debounced work and waits for background refetches.
func (s *Store) Close() {
	s.search.debounce.Stop()
	s.bg.Wait()
}

// refetchPostsAsync converges all views of the feed to server truth after a
// settled mutation. Fire-and-forget: a failure is logged and never rolls
// back already-resolved state.
func (s *Store) refetchPostsAsync() {
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		_, err, _ := s.flight.Do("posts", func() (any, error) {
			return nil, s.FetchPosts(ctx)
		})
		if err != nil {
			s.log.Warn(ctx, "background feed refetch failed", "error", err)
		}
	}()
}

func (s *Store) refetchProductsAsync() {
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		_, err, _ := s.flight.Do("products", func() (any, error) {
			return nil, s.FetchProducts(ctx)
		})
		if err != nil {
			s.log.Warn(ctx, "background product refetch failed", "error", err)
		}
	}()
}
