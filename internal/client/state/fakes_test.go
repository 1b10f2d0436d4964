package state

import (
	"context"
	"sync"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
	"github.com/tuguldur-s/travelfeed/internal/client/models"
	"github.com/tuguldur-s/travelfeed/internal/logging"
)

// ---- fake API client ----

// fakeAPI implements api.Client for unit tests. Result fields configure the
// behavior; Last*/`*Calls` fields record what happened.
type fakeAPI struct {
	mu sync.Mutex

	LoginResp *models.Session
	LoginErr  error
	LastLogin api.Credentials

	RegisterResp *models.Session
	RegisterErr  error

	Posts           []models.Post
	FetchPostsErr   error
	FetchPostsCalls int

	CreatePostResp  *models.Post
	CreatePostErr   error
	CreatePostCalls int

	Products          []models.Product
	FetchProductsErr  error
	CreateProductResp *models.Product
	CreateProductErr  error

	Categories         []models.Category
	FetchCategoriesErr error

	CommentResp *models.Comment
	CommentErr  error
	LastComment api.CommentDraft

	LikeResp  *api.LikeResult
	LikeErr   error
	LikeCalls int
	LastLike  string
	// likeGate, when non-nil, blocks LikePost until closed.
	likeGate chan struct{}
	// SyncFeed makes successful like/unlike calls update Posts the way the
	// real backend would, so background refetches converge instead of
	// resetting the projection.
	SyncFeed bool

	UnlikeResp  *api.LikeResult
	UnlikeErr   error
	UnlikeCalls int

	ProfileResp *models.User
	ProfileErr  error

	SearchResp  *api.SearchPage
	SearchErr   error
	SearchCalls int
	LastSearch  api.SearchQuery
}

func (f *fakeAPI) Close() error { return nil }

func (f *fakeAPI) Login(ctx context.Context, creds api.Credentials) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastLogin = creds
	return f.LoginResp, f.LoginErr
}

func (f *fakeAPI) Register(ctx context.Context, reg api.Registration) (*models.Session, error) {
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeAPI) FetchPosts(ctx context.Context) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FetchPostsCalls++
	if f.FetchPostsErr != nil {
		return nil, f.FetchPostsErr
	}
	out := make([]models.Post, len(f.Posts))
	copy(out, f.Posts)
	return out, nil
}

func (f *fakeAPI) CreatePost(ctx context.Context, draft api.PostDraft) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreatePostCalls++
	return f.CreatePostResp, f.CreatePostErr
}

func (f *fakeAPI) FetchProducts(ctx context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FetchProductsErr != nil {
		return nil, f.FetchProductsErr
	}
	out := make([]models.Product, len(f.Products))
	copy(out, f.Products)
	return out, nil
}

func (f *fakeAPI) CreateProduct(ctx context.Context, draft api.ProductDraft) (*models.Product, error) {
	return f.CreateProductResp, f.CreateProductErr
}

func (f *fakeAPI) FetchCategories(ctx context.Context) ([]models.Category, error) {
	if f.FetchCategoriesErr != nil {
		return nil, f.FetchCategoriesErr
	}
	return f.Categories, nil
}

func (f *fakeAPI) CreateComment(ctx context.Context, draft api.CommentDraft) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastComment = draft
	return f.CommentResp, f.CommentErr
}

func (f *fakeAPI) LikePost(ctx context.Context, postID string) (*api.LikeResult, error) {
	f.mu.Lock()
	f.LikeCalls++
	f.LastLike = postID
	gate := f.likeGate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.LikeErr != nil {
		return nil, f.LikeErr
	}
	if f.SyncFeed {
		f.adjustFeedLocked(postID, +1)
	}
	if f.LikeResp != nil {
		return f.LikeResp, nil
	}
	return &api.LikeResult{PostID: postID}, nil
}

func (f *fakeAPI) adjustFeedLocked(postID string, delta int) {
	for i := range f.Posts {
		if f.Posts[i].ID == postID {
			f.Posts[i].LikesCount += delta
			f.Posts[i].IsLiked = delta > 0
			return
		}
	}
}

func (f *fakeAPI) UnlikePost(ctx context.Context, postID string) (*api.LikeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UnlikeCalls++
	if f.UnlikeErr != nil {
		return nil, f.UnlikeErr
	}
	if f.SyncFeed {
		f.adjustFeedLocked(postID, -1)
	}
	if f.UnlikeResp != nil {
		return f.UnlikeResp, nil
	}
	return &api.LikeResult{PostID: postID}, nil
}

func (f *fakeAPI) FetchUserProfile(ctx context.Context, userID string) (*models.User, error) {
	return f.ProfileResp, f.ProfileErr
}

func (f *fakeAPI) Search(ctx context.Context, q api.SearchQuery) (*api.SearchPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SearchCalls++
	f.LastSearch = q
	return f.SearchResp, f.SearchErr
}

func (f *fakeAPI) likeCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.LikeCalls
}

func (f *fakeAPI) fetchPostsCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.FetchPostsCalls
}

func (f *fakeAPI) searchCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.SearchCalls
}

func (f *fakeAPI) lastSearch() api.SearchQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.LastSearch
}

// ---- fake session manager ----

type fakeSession struct {
	mu      sync.Mutex
	user    *models.User
	token   string
	setErr  error
	cleared bool
}

func (f *fakeSession) SetCurrent(ctx context.Context, user *models.User, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.user = user
	f.token = token
	return nil
}

func (f *fakeSession) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = nil
	f.token = ""
	f.cleared = true
	return nil
}

func (f *fakeSession) CurrentUser() *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user
}

func (f *fakeSession) CurrentUserID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return ""
	}
	return f.user.ID
}

func (f *fakeSession) storedToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

// ---- helpers ----

func newTestStore(f *fakeAPI, sess *fakeSession, opts Options) *Store {
	return NewStore(f, sess, logging.NewDiscard(), opts)
}
