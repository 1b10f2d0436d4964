package state

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
	"github.com/tuguldur-s/travelfeed/internal/client/models"
)

// ErrPostIncomplete is a client-side precondition failure: the backend
// requires a description and at least one image.
var ErrPostIncomplete = errors.New("a post needs a description and at least one image")

type postsSlice struct {
	mu sync.Mutex
	status
	posts []models.Post
}

// PostsState is a point-in-time snapshot of the feed slice.
type PostsState struct {
	Posts   []models.Post
	Loading bool
	Err     string
}

func (s *Store) PostsState() PostsState {
	s.posts.mu.Lock()
	defer s.posts.mu.Unlock()
	return PostsState{Posts: slices.Clone(s.posts.posts), Loading: s.posts.Loading, Err: s.posts.Err}
}

// FetchPosts replaces the feed with the server's list and recomputes each
// post's like projection for the current viewer.
func (s *Store) FetchPosts(ctx context.Context) error {
	s.posts.mu.Lock()
	s.posts.begin()
	s.posts.mu.Unlock()

	posts, err := s.api.FetchPosts(ctx)
	if err != nil {
		s.posts.mu.Lock()
		s.posts.fail(err)
		s.posts.mu.Unlock()
		return err
	}

	viewer := s.sess.CurrentUserID()
	for i := range posts {
		posts[i].Recount(viewer)
	}

	s.posts.mu.Lock()
	s.posts.posts = posts
	s.posts.done()
	s.posts.mu.Unlock()

	// The server list is now truth; settled like states are rederived on
	// next touch. Pending transitions stay tracked.
	s.likes.mu.Lock()
	for id, st := range s.likes.states {
		if st == likeLiked || st == likeUnliked {
			delete(s.likes.states, id)
		}
	}
	s.likes.mu.Unlock()

	return nil
}

// CreatePost uploads a new post. The returned item is appended locally to
// avoid a visible flash of emptiness, and a background refetch converges to
// the authoritative list.
func (s *Store) CreatePost(ctx context.Context, draft api.PostDraft) (*models.Post, error) {
	if draft.Description == "" || len(draft.Images) == 0 {
		s.posts.mu.Lock()
		s.posts.Err = ErrPostIncomplete.Error()
		s.posts.mu.Unlock()
		return nil, ErrPostIncomplete
	}

	s.posts.mu.Lock()
	s.posts.begin()
	s.posts.mu.Unlock()

	post, err := s.api.CreatePost(ctx, draft)
	if err != nil {
		s.posts.mu.Lock()
		s.posts.fail(err)
		s.posts.mu.Unlock()
		return nil, err
	}

	post.Recount(s.sess.CurrentUserID())

	s.posts.mu.Lock()
	s.posts.posts = append(s.posts.posts, *post)
	s.posts.done()
	s.posts.mu.Unlock()

	s.refetchPostsAsync()
	return post, nil
}

// replacePost swaps an updated post into the feed by id. No-op when the
// post is not in local state.
func (s *Store) replacePost(updated models.Post) {
	updated.Recount(s.sess.CurrentUserID())

	s.posts.mu.Lock()
	defer s.posts.mu.Unlock()
	for i := range s.posts.posts {
		if s.posts.posts[i].ID == updated.ID {
			s.posts.posts[i] = updated
			return
		}
	}
}
