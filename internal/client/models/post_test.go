package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPost_LikedBy(t *testing.T) {
	p := Post{
		ID:    "p1",
		Likes: []Like{{PostID: "p1", UserID: "u1"}, {PostID: "p1", UserID: "u2"}},
	}

	assert.True(t, p.LikedBy("u1"))
	assert.False(t, p.LikedBy("u3"))
	assert.False(t, p.LikedBy(""))
}

func TestPost_RecountFromLikes(t *testing.T) {
	p := Post{
		ID:         "p1",
		Likes:      []Like{{PostID: "p1", UserID: "u1"}, {PostID: "p1", UserID: "u2"}},
		LikesCount: 99,
		IsLiked:    false,
	}

	p.Recount("u2")
	assert.Equal(t, 2, p.LikesCount)
	assert.True(t, p.IsLiked)

	p.Recount("u9")
	assert.False(t, p.IsLiked)
}

func TestPost_RecountKeepsServerProjectionWithoutLikesArray(t *testing.T) {
	p := Post{ID: "p1", LikesCount: 7, IsLiked: true}

	p.Recount("u1")
	assert.Equal(t, 7, p.LikesCount)
	assert.True(t, p.IsLiked)
}
