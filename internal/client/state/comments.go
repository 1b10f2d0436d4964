package state

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
	"github.com/tuguldur-s/travelfeed/internal/client/models"
)

// ErrCommentEmpty is a client-side precondition failure.
var ErrCommentEmpty = errors.New("a comment needs content")

type commentsSlice struct {
	mu sync.Mutex
	status
	comments []models.Comment
}

// CommentsState is a point-in-time snapshot of the comments slice.
type CommentsState struct {
	Comments []models.Comment
	Loading  bool
	Err      string
}

func (s *Store) CommentsState() CommentsState {
	s.comments.mu.Lock()
	defer s.comments.mu.Unlock()
	return CommentsState{Comments: slices.Clone(s.comments.comments), Loading: s.comments.Loading, Err: s.comments.Err}
}

// CreateComment posts a comment, appends it to the flat list, patches the
// owning post's embedded list when that post is in feed state, and then
// refetches the canonical feed in the background.
func (s *Store) CreateComment(ctx context.Context, draft api.CommentDraft) (*models.Comment, error) {
	if draft.Content == "" {
		s.comments.mu.Lock()
		s.comments.Err = ErrCommentEmpty.Error()
		s.comments.mu.Unlock()
		return nil, ErrCommentEmpty
	}

	s.comments.mu.Lock()
	s.comments.begin()
	s.comments.mu.Unlock()

	comment, err := s.api.CreateComment(ctx, draft)
	if err != nil {
		s.comments.mu.Lock()
		s.comments.fail(err)
		s.comments.mu.Unlock()
		return nil, err
	}

	s.comments.mu.Lock()
	s.comments.comments = append(s.comments.comments, *comment)
	s.comments.done()
	s.comments.mu.Unlock()

	// Patch the embedded list so the detail view updates before the
	// refetch lands. No-op when the post is not held locally.
	s.posts.mu.Lock()
	for i := range s.posts.posts {
		if s.posts.posts[i].ID == comment.PostID {
			s.posts.posts[i].Comments = append(s.posts.posts[i].Comments, *comment)
			break
		}
	}
	s.posts.mu.Unlock()

	s.refetchPostsAsync()
	return comment, nil
}
