package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"github.com/tuguldur-s/travelfeed/internal/client/models"
	"github.com/tuguldur-s/travelfeed/internal/common"
	"github.com/tuguldur-s/travelfeed/internal/logging"
)

// anonymousKey marks a request that must not carry the stored token
// (login and register supply no prior credential).
type anonymousKey struct{}

func withoutAuth(ctx context.Context) context.Context {
	return context.WithValue(ctx, anonymousKey{}, true)
}

func isAnonymous(ctx context.Context) bool {
	v, _ := ctx.Value(anonymousKey{}).(bool)
	return v
}

// authTransport injects the bearer token and a request id into every
// outbound request. A missing token is not an error: the request proceeds
// unauthenticated and the server is responsible for rejecting it.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	if !isAnonymous(req.Context()) {
		token, err := t.tokens.Token(req.Context())
		if err == nil && token != "" {
			req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
		}
	}

	return t.base.RoundTrip(req)
}

// RESTClient implements Client against the travelfeed REST backend.
type RESTClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
	log     logging.Logger
}

type Option func(*RESTClient)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *RESTClient) { c.hc.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *RESTClient) { c.log = l }
}

// NewRESTClient constructs the adapter. The TokenSource is read before
// every authenticated request and written on login/register success.
func NewRESTClient(baseURL string, tokens TokenSource, opts ...Option) *RESTClient {
	c := &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		log:     logging.NewDiscard(),
	}
	c.hc = &http.Client{
		Timeout:   15 * time.Second,
		Transport: &authTransport{base: http.DefaultTransport, tokens: tokens},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RESTClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

func (c *RESTClient) Login(ctx context.Context, creds Credentials) (*models.Session, error) {
	var out models.Session
	if err := c.doJSON(withoutAuth(ctx), http.MethodPost, "/auth/login", creds, &out); err != nil {
		return nil, err
	}
	if err := validateSession(&out); err != nil {
		return nil, err
	}
	// Persist before resolving so the very next call already carries it.
	if err := c.tokens.Save(ctx, out.Token); err != nil {
		return nil, fmt.Errorf("saving token: %w", err)
	}
	return &out, nil
}

func (c *RESTClient) Register(ctx context.Context, reg Registration) (*models.Session, error) {
	var out models.Session
	if err := c.doJSON(withoutAuth(ctx), http.MethodPost, "/auth/register", reg, &out); err != nil {
		return nil, err
	}
	if err := validateSession(&out); err != nil {
		return nil, err
	}
	if err := c.tokens.Save(ctx, out.Token); err != nil {
		return nil, fmt.Errorf("saving token: %w", err)
	}
	return &out, nil
}

func (c *RESTClient) FetchPosts(ctx context.Context) ([]models.Post, error) {
	var out []models.Post
	if err := c.get(ctx, "/posts", nil, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].ID == "" {
			return nil, fmt.Errorf("%w: post missing id", ErrBadPayload)
		}
	}
	return out, nil
}

func (c *RESTClient) CreatePost(ctx context.Context, draft PostDraft) (*models.Post, error) {
	body, contentType, err := encodePostForm(draft)
	if err != nil {
		return nil, err
	}
	var out models.Post
	if err := c.do(ctx, http.MethodPost, "/posts", nil, body, contentType, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, fmt.Errorf("%w: created post missing id", ErrBadPayload)
	}
	return &out, nil
}

func (c *RESTClient) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.get(ctx, "/products", nil, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].ID == "" {
			return nil, fmt.Errorf("%w: product missing id", ErrBadPayload)
		}
	}
	return out, nil
}

func (c *RESTClient) CreateProduct(ctx context.Context, draft ProductDraft) (*models.Product, error) {
	var out models.Product
	if err := c.doJSON(ctx, http.MethodPost, "/products", draft, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, fmt.Errorf("%w: created product missing id", ErrBadPayload)
	}
	return &out, nil
}

func (c *RESTClient) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.get(ctx, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) CreateComment(ctx context.Context, draft CommentDraft) (*models.Comment, error) {
	var out models.Comment
	if err := c.doJSON(ctx, http.MethodPost, "/comments", draft, &out); err != nil {
		return nil, err
	}
	if out.ID == "" || out.PostID == "" {
		return nil, fmt.Errorf("%w: created comment missing id", ErrBadPayload)
	}
	return &out, nil
}

type likeRequest struct {
	PostID string `json:"postId"`
}

func (c *RESTClient) LikePost(ctx context.Context, postID string) (*LikeResult, error) {
	var out LikeResult
	if err := c.doJSON(ctx, http.MethodPost, "/likes", likeRequest{PostID: postID}, &out); err != nil {
		return nil, err
	}
	if out.PostID == "" {
		out.PostID = postID
	}
	return &out, nil
}

func (c *RESTClient) UnlikePost(ctx context.Context, postID string) (*LikeResult, error) {
	var out LikeResult
	if err := c.doJSON(ctx, http.MethodDelete, "/likes/"+url.PathEscape(postID), nil, &out); err != nil {
		return nil, err
	}
	if out.PostID == "" {
		out.PostID = postID
	}
	return &out, nil
}

func (c *RESTClient) FetchUserProfile(ctx context.Context, userID string) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/users/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, fmt.Errorf("%w: user missing id", ErrBadPayload)
	}
	return &out, nil
}

func (c *RESTClient) Search(ctx context.Context, q SearchQuery) (*SearchPage, error) {
	var raw struct {
		Results    json.RawMessage   `json:"results"`
		Pagination models.Pagination `json:"pagination"`
	}
	if err := c.get(ctx, "/search", q.values(), &raw); err != nil {
		return nil, err
	}

	page := &SearchPage{Pagination: raw.Pagination}
	if len(raw.Results) == 0 {
		return page, nil
	}

	var err error
	switch q.Type {
	case "", "posts":
		err = json.Unmarshal(raw.Results, &page.Posts)
	case "products":
		err = json.Unmarshal(raw.Results, &page.Products)
	case "users":
		err = json.Unmarshal(raw.Results, &page.Users)
	default:
		return nil, fmt.Errorf("unknown search type %q", q.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return page, nil
}

func (q SearchQuery) values() url.Values {
	vals := url.Values{}
	set := func(key, value string) {
		if value != "" {
			vals.Set(key, value)
		}
	}
	set("query", q.Query)
	set("type", q.Type)
	set("category", q.Category)
	set("priceRange", q.PriceRange)
	set("location", q.Location)
	set("sortBy", q.SortBy)
	if q.Page > 0 {
		vals.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}
	return vals
}

func validateSession(s *models.Session) error {
	if s.Token == "" || s.User.ID == "" {
		return fmt.Errorf("%w: session missing token or user", ErrBadPayload)
	}
	return nil
}

// doJSON executes a request with an optional JSON body.
func (c *RESTClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, nil, body, contentType, out)
}

// get executes an idempotent fetch with capped exponential backoff on
// transport failures and 5xx responses. Mutations never retry.
func (c *RESTClient) get(ctx context.Context, path string, query url.Values, out any) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(100*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, query, nil, "", out)
		if isTransient(err) {
			c.log.Warn(ctx, "transient fetch failure, retrying", "path", path, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *RESTClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return nil
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnavailable) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status >= 500
}

// errorFromResponse extracts the server's human-readable message from the
// error payload, falling back to the status text.
func errorFromResponse(status int, data []byte) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(data, &payload)

	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	}
	return &APIError{Status: status, Message: msg}
}
