package api

import (
	"context"

	"github.com/tuguldur-s/travelfeed/internal/client/models"
)

// TokenSource supplies the bearer token for outbound requests and receives
// the token returned by login/register before those calls resolve.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
}

// Client exposes one typed method per backend endpoint.
type Client interface {
	Close() error
	Login(ctx context.Context, creds Credentials) (*models.Session, error)
	Register(ctx context.Context, reg Registration) (*models.Session, error)
	FetchPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, draft PostDraft) (*models.Post, error)
	FetchProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, draft ProductDraft) (*models.Product, error)
	FetchCategories(ctx context.Context) ([]models.Category, error)
	CreateComment(ctx context.Context, draft CommentDraft) (*models.Comment, error)
	LikePost(ctx context.Context, postID string) (*LikeResult, error)
	UnlikePost(ctx context.Context, postID string) (*LikeResult, error)
	FetchUserProfile(ctx context.Context, userID string) (*models.User, error)
	Search(ctx context.Context, q SearchQuery) (*SearchPage, error)
}
