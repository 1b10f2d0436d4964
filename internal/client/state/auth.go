package state

import (
	"context"
	"sync"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
	"github.com/tuguldur-s/travelfeed/internal/client/models"
)

type authSlice struct {
	mu sync.Mutex
	status
	user  *models.User
	token string
}

// AuthState is a point-in-time snapshot of the auth slice.
type AuthState struct {
	User    *models.User
	Token   string
	Loading bool
	Err     string
}

func (s *Store) AuthState() AuthState {
	s.auth.mu.Lock()
	defer s.auth.mu.Unlock()
	return AuthState{User: s.auth.user, Token: s.auth.token, Loading: s.auth.Loading, Err: s.auth.Err}
}

// Login authenticates and installs the session. The adapter has already
// persisted the token before this resolves; SetCurrent additionally caches
// the profile summary for restart survival. A failed login leaves any
// previously stored session untouched.
func (s *Store) Login(ctx context.Context, creds api.Credentials) error {
	s.auth.mu.Lock()
	s.auth.begin()
	s.auth.mu.Unlock()

	sess, err := s.api.Login(ctx, creds)
	if err != nil {
		s.auth.mu.Lock()
		s.auth.fail(err)
		s.auth.mu.Unlock()
		return err
	}

	if err := s.sess.SetCurrent(ctx, &sess.User, sess.Token); err != nil {
		s.auth.mu.Lock()
		s.auth.fail(err)
		s.auth.mu.Unlock()
		return err
	}

	s.auth.mu.Lock()
	s.auth.user = &sess.User
	s.auth.token = sess.Token
	s.auth.done()
	s.auth.mu.Unlock()
	s.log.Info(ctx, "logged in", "user_id", sess.User.ID)
	return nil
}

// Register creates an account; on success the backend returns a live
// session, so the flow is identical to Login from here on.
func (s *Store) Register(ctx context.Context, reg api.Registration) error {
	s.auth.mu.Lock()
	s.auth.begin()
	s.auth.mu.Unlock()

	sess, err := s.api.Register(ctx, reg)
	if err != nil {
		s.auth.mu.Lock()
		s.auth.fail(err)
		s.auth.mu.Unlock()
		return err
	}

	if err := s.sess.SetCurrent(ctx, &sess.User, sess.Token); err != nil {
		s.auth.mu.Lock()
		s.auth.fail(err)
		s.auth.mu.Unlock()
		return err
	}

	s.auth.mu.Lock()
	s.auth.user = &sess.User
	s.auth.token = sess.Token
	s.auth.done()
	s.auth.mu.Unlock()
	s.log.Info(ctx, "registered", "user_id", sess.User.ID)
	return nil
}

// Logout destroys the session, in memory and on disk.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.sess.Clear(ctx); err != nil {
		return err
	}
	s.auth.mu.Lock()
	s.auth.user = nil
	s.auth.token = ""
	s.auth.done()
	s.auth.mu.Unlock()
	return nil
}

// AdoptSession installs a session restored from disk into the auth slice.
func (s *Store) AdoptSession(user *models.User, token string) {
	s.auth.mu.Lock()
	s.auth.user = user
	s.auth.token = token
	s.auth.mu.Unlock()
}
