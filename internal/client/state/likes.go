package state

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/tuguldur-s/travelfeed/internal/client/models"
)

// likeState is the per-post position in the optimistic update machine.
type likeState int

const (
	likeUnliked likeState = iota
	likeLiked
	likePendingLike
	likePendingUnlike
)

type likesSlice struct {
	mu sync.Mutex
	status
	likes   []models.Like
	states  map[string]likeState
	lastTap map[string]time.Time
}

// LikesState is a point-in-time snapshot of the likes slice.
type LikesState struct {
	Likes   []models.Like
	Loading bool
	Err     string
}

func (s *Store) LikesState() LikesState {
	s.likes.mu.Lock()
	defer s.likes.mu.Unlock()
	return LikesState{Likes: slices.Clone(s.likes.likes), Loading: s.likes.Loading, Err: s.likes.Err}
}

func (s *Store) ClearLikeError() {
	s.likes.mu.Lock()
	s.likes.Err = ""
	s.likes.mu.Unlock()
}

// likeStateFor returns the tracked machine state for a post, deriving the
// initial position from feed state on first touch. Caller holds likes.mu.
func (s *Store) likeStateFor(postID string) likeState {
	if st, ok := s.likes.states[postID]; ok {
		return st
	}
	st := likeUnliked
	s.posts.mu.Lock()
	for i := range s.posts.posts {
		if s.posts.posts[i].ID == postID && s.posts.posts[i].IsLiked {
			st = likeLiked
			break
		}
	}
	s.posts.mu.Unlock()
	s.likes.states[postID] = st
	return st
}

// Like flips the post to liked locally before the network round-trip, then
// reconciles with the server response. While the request is in flight,
// further taps on the same post are ignored. On failure the flip and the
// count are fully reverted and the error surfaces on the slice.
func (s *Store) Like(ctx context.Context, postID string) error {
	s.likes.mu.Lock()
	switch s.likeStateFor(postID) {
	case likePendingLike, likePendingUnlike, likeLiked:
		s.likes.mu.Unlock()
		return nil
	}
	s.likes.states[postID] = likePendingLike
	s.likes.begin()
	s.likes.mu.Unlock()

	s.applyLikeDelta(postID, +1)

	res, err := s.api.LikePost(ctx, postID)
	if err != nil {
		s.applyLikeDelta(postID, -1)
		s.likes.mu.Lock()
		s.likes.states[postID] = likeUnliked
		s.likes.fail(err)
		s.likes.mu.Unlock()
		s.log.Warn(ctx, "like failed, reverted", "post_id", postID, "error", err)
		return err
	}

	userID := res.UserID
	if userID == "" {
		userID = s.sess.CurrentUserID()
	}

	s.likes.mu.Lock()
	s.likes.states[postID] = likeLiked
	s.likes.likes = append(s.likes.likes, models.Like{PostID: res.PostID, UserID: userID})
	s.likes.done()
	s.likes.mu.Unlock()

	if res.LikesCount != nil {
		s.setLikeProjection(postID, *res.LikesCount, true)
	}
	if res.Post != nil {
		s.replacePost(*res.Post)
	}

	s.refetchPostsAsync()
	return nil
}

// Unlike mirrors Like: optimistic decrement, revert on failure.
func (s *Store) Unlike(ctx context.Context, postID string) error {
	s.likes.mu.Lock()
	switch s.likeStateFor(postID) {
	case likePendingLike, likePendingUnlike, likeUnliked:
		s.likes.mu.Unlock()
		return nil
	}
	s.likes.states[postID] = likePendingUnlike
	s.likes.begin()
	s.likes.mu.Unlock()

	s.applyLikeDelta(postID, -1)

	res, err := s.api.UnlikePost(ctx, postID)
	if err != nil {
		s.applyLikeDelta(postID, +1)
		s.likes.mu.Lock()
		s.likes.states[postID] = likeLiked
		s.likes.fail(err)
		s.likes.mu.Unlock()
		s.log.Warn(ctx, "unlike failed, reverted", "post_id", postID, "error", err)
		return err
	}

	s.likes.mu.Lock()
	s.likes.states[postID] = likeUnliked
	s.likes.likes = slices.DeleteFunc(s.likes.likes, func(l models.Like) bool {
		return l.PostID == postID
	})
	s.likes.done()
	s.likes.mu.Unlock()

	if res.LikesCount != nil {
		s.setLikeProjection(postID, *res.LikesCount, false)
	}
	if res.Post != nil {
		s.replacePost(*res.Post)
	}

	s.refetchPostsAsync()
	return nil
}

// DoubleTap is the gesture trigger: it synthesizes a single like, never an
// unlike, and repeated taps inside the window collapse into one action.
func (s *Store) DoubleTap(ctx context.Context, postID string) error {
	s.likes.mu.Lock()
	now := s.now()
	if last, ok := s.likes.lastTap[postID]; ok && now.Sub(last) < s.doubleTapWindow {
		s.likes.mu.Unlock()
		return nil
	}
	s.likes.lastTap[postID] = now
	st := s.likeStateFor(postID)
	s.likes.mu.Unlock()

	if st != likeUnliked {
		return nil
	}
	return s.Like(ctx, postID)
}

// applyLikeDelta adjusts a post's like projection in feed state. The flag
// follows the direction: +1 marks liked, -1 marks unliked.
func (s *Store) applyLikeDelta(postID string, delta int) {
	s.posts.mu.Lock()
	defer s.posts.mu.Unlock()
	for i := range s.posts.posts {
		if s.posts.posts[i].ID == postID {
			s.posts.posts[i].LikesCount += delta
			s.posts.posts[i].IsLiked = delta > 0
			return
		}
	}
}

// setLikeProjection overwrites a post's like projection with the server's
// authoritative count.
func (s *Store) setLikeProjection(postID string, count int, liked bool) {
	s.posts.mu.Lock()
	defer s.posts.mu.Unlock()
	for i := range s.posts.posts {
		if s.posts.posts[i].ID == postID {
			s.posts.posts[i].LikesCount = count
			s.posts.posts[i].IsLiked = liked
			return
		}
	}
}
