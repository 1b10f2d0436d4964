// Package session holds the in-memory session context: the current user and
// the persisted bearer token. It implements api.TokenSource, so the HTTP
// adapter reads the token through it before every authenticated request.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tuguldur-s/travelfeed/internal/client/models"
	sessionrepo "github.com/tuguldur-s/travelfeed/internal/client/repositories/session"
	"github.com/tuguldur-s/travelfeed/internal/common"
	"github.com/tuguldur-s/travelfeed/internal/dbx"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Session is the dependency-injected session context. All reads and writes
// go through the client-local database, so a restart restores the session.
type Session struct {
	db *sql.DB

	mu   sync.Mutex
	user *models.User

	// now is a test seam for expiry checks.
	now func() time.Time
}

func New(db *sql.DB) *Session {
	return &Session{db: db, now: time.Now}
}

func (s *Session) repo() sessionrepo.Repository {
	return sessionrepo.NewSQLiteRepository(s.db)
}

// Token returns the stored bearer token, or "" when anonymous.
// Implements api.TokenSource.
func (s *Session) Token(ctx context.Context) (string, error) {
	v, err := s.repo().Get(ctx, keyToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Save persists the bearer token. Implements api.TokenSource; called by the
// adapter on login/register success before those calls resolve.
func (s *Session) Save(ctx context.Context, token string) error {
	return s.repo().Set(ctx, keyToken, []byte(token))
}

// SetCurrent stores the authenticated user and token in one transaction and
// updates the in-memory context.
func (s *Session) SetCurrent(ctx context.Context, user *models.User, token string) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := sessionrepo.NewSQLiteRepository(tx)
		if err := r.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return r.Set(ctx, keyUser, b)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Clear wipes the stored session. Used on logout.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.repo().Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}

// CurrentUser returns the in-memory user, or nil when anonymous.
func (s *Session) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// CurrentUserID returns the viewer's id, or "" when anonymous.
func (s *Session) CurrentUserID() string {
	if u := s.CurrentUser(); u != nil {
		return u.ID
	}
	return ""
}

func (s *Session) LoggedIn() bool {
	return s.CurrentUser() != nil
}

// Restore loads the session at process start. A missing token means
// anonymous (nil, nil). The token's claims are parsed without verification:
// the server verifies signatures, the client only needs the subject and
// expiry. Invalid or expired tokens are removed and reported; both are
// recoverable by logging in again.
func (s *Session) Restore(ctx context.Context) (*models.User, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		_ = s.repo().Clear(ctx)
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(s.now()) {
		_ = s.repo().Clear(ctx)
		return nil, common.ErrTokenExpired
	}

	user := &models.User{}
	if b, err := s.repo().Get(ctx, keyUser); err == nil && len(b) > 0 {
		if err := json.Unmarshal(b, user); err != nil {
			user = &models.User{}
		}
	}
	if user.ID == "" {
		sub, err := parsed.Claims.GetSubject()
		if err != nil || sub == "" {
			_ = s.repo().Clear(ctx)
			return nil, common.ErrInvalidToken
		}
		user.ID = sub
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}
