package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
	"github.com/tuguldur-s/travelfeed/internal/client/models"
)

func TestCreateCommentAppendsAndPatchesPost(t *testing.T) {
	f := feedWith(models.Post{ID: "p1"}, models.Post{ID: "p2"})
	f.CommentResp = &models.Comment{ID: "c1", PostID: "p1", AuthorID: "u1", Content: "nice"}
	sess := &fakeSession{user: &models.User{ID: "u1"}}
	s := newTestStore(f, sess, Options{})
	defer s.Close()
	loadFeed(t, s)

	// The canonical feed carries the comment too, as after a real write.
	f.mu.Lock()
	f.Posts[0].Comments = []models.Comment{*f.CommentResp}
	f.mu.Unlock()

	comment, err := s.CreateComment(context.Background(), api.CommentDraft{PostID: "p1", Content: "nice"})
	require.NoError(t, err)
	require.Equal(t, "c1", comment.ID)
	s.Wait()

	cs := s.CommentsState()
	require.Len(t, cs.Comments, 1)
	require.Equal(t, "nice", cs.Comments[0].Content)

	p1 := postByID(t, s, "p1")
	require.Len(t, p1.Comments, 1)
	require.Empty(t, postByID(t, s, "p2").Comments)
}

func TestCreateCommentPatchSurvivesRefetchFailure(t *testing.T) {
	f := feedWith(models.Post{ID: "p1"})
	f.CommentResp = &models.Comment{ID: "c1", PostID: "p1", Content: "nice"}
	sess := &fakeSession{user: &models.User{ID: "u1"}}
	s := newTestStore(f, sess, Options{})
	defer s.Close()
	loadFeed(t, s)

	f.mu.Lock()
	f.FetchPostsErr = api.ErrUnavailable
	f.mu.Unlock()

	_, err := s.CreateComment(context.Background(), api.CommentDraft{PostID: "p1", Content: "nice"})
	require.NoError(t, err)
	s.Wait()

	// The failed background refetch never rolls back the patched post.
	require.Len(t, postByID(t, s, "p1").Comments, 1)
	require.Len(t, s.CommentsState().Comments, 1)
}

func TestCreateCommentPostNotHeldLocally(t *testing.T) {
	f := &fakeAPI{
		CommentResp: &models.Comment{ID: "c1", PostID: "elsewhere", Content: "hi"},
	}
	s := newTestStore(f, &fakeSession{}, Options{})
	defer s.Close()

	_, err := s.CreateComment(context.Background(), api.CommentDraft{PostID: "elsewhere", Content: "hi"})
	require.NoError(t, err)
	s.Wait()

	require.Len(t, s.CommentsState().Comments, 1)
	require.Empty(t, s.PostsState().Posts)
}

func TestCreateCommentEmptyContent(t *testing.T) {
	f := &fakeAPI{}
	s := newTestStore(f, &fakeSession{}, Options{})
	defer s.Close()

	_, err := s.CreateComment(context.Background(), api.CommentDraft{PostID: "p1"})
	require.ErrorIs(t, err, ErrCommentEmpty)
	require.NotEmpty(t, s.CommentsState().Err)
}

func TestCreateCommentFailure(t *testing.T) {
	f := &fakeAPI{CommentErr: api.ErrUnavailable}
	s := newTestStore(f, &fakeSession{}, Options{})
	defer s.Close()

	_, err := s.CreateComment(context.Background(), api.CommentDraft{PostID: "p1", Content: "hi"})
	require.ErrorIs(t, err, api.ErrUnavailable)

	cs := s.CommentsState()
	require.False(t, cs.Loading)
	require.NotEmpty(t, cs.Err)
	require.Empty(t, cs.Comments)
}
