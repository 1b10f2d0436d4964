package models

import "time"

// Post is a travel post as held in feed state.
//
// Likes and Comments are the server's embedded join records. LikesCount and
// IsLiked are the viewer-facing projection of Likes; the state layer keeps
// them consistent via Recount and mutates them directly during optimistic
// like/unlike updates.
type Post struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Images      []string  `json:"images,omitempty"`
	Location    string    `json:"location,omitempty"`
	Category    string    `json:"category,omitempty"`
	AuthorID    string    `json:"authorId"`
	Author      *User     `json:"author,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Likes       []Like    `json:"likes,omitempty"`
	Comments    []Comment `json:"comments,omitempty"`
	LikesCount  int       `json:"likesCount"`
	IsLiked     bool      `json:"isLiked"`
}

// LikedBy reports whether userID appears in the embedded like records.
func (p *Post) LikedBy(userID string) bool {
	if userID == "" {
		return false
	}
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// Recount refreshes LikesCount and IsLiked from the embedded like records.
// When the server sent no likes array the projection fields are kept as
// delivered.
func (p *Post) Recount(viewerID string) {
	if p.Likes == nil {
		return
	}
	p.LikesCount = len(p.Likes)
	p.IsLiked = p.LikedBy(viewerID)
}
