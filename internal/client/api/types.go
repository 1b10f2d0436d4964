package api

import "github.com/tuguldur-s/travelfeed/internal/client/models"

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ImageFile is one image attached to a post draft.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// PostDraft is the client-side input for creating a post. It is encoded as
// multipart/form-data on the wire.
type PostDraft struct {
	Description string
	Location    string
	Category    string
	Images      []ImageFile
}

// ProductDraft is the JSON body for creating a product.
type ProductDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
}

// CommentDraft is the JSON body for creating a comment.
type CommentDraft struct {
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

// LikeResult is the response of like and unlike. LikesCount and Post are
// optional; when the server sends them they are authoritative and overwrite
// the optimistic projection.
type LikeResult struct {
	PostID     string       `json:"postId"`
	UserID     string       `json:"userId"`
	LikesCount *int         `json:"likesCount,omitempty"`
	Post       *models.Post `json:"post,omitempty"`
}

// SearchQuery is the full set of /search parameters. Zero values are
// omitted from the query string.
type SearchQuery struct {
	Query      string
	Type       string
	Category   string
	PriceRange string
	Location   string
	SortBy     string
	Page       int
	Limit      int
}

// SearchPage is one fully-replaced page of search results. Exactly one of
// Posts, Products, or Users is populated, matching the requested type.
type SearchPage struct {
	Posts      []models.Post     `json:"-"`
	Products   []models.Product  `json:"-"`
	Users      []models.User     `json:"-"`
	Pagination models.Pagination `json:"pagination"`
}
