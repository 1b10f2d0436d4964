package state

import (
	"context"
	"sync"

	"github.com/tuguldur-s/travelfeed/internal/client/models"
)

type profileSlice struct {
	mu sync.Mutex
	status
	profile *models.User
}

// ProfileState is a point-in-time snapshot of the profile slice.
type ProfileState struct {
	Profile *models.User
	Loading bool
	Err     string
}

func (s *Store) ProfileState() ProfileState {
	s.profile.mu.Lock()
	defer s.profile.mu.Unlock()
	return ProfileState{Profile: s.profile.profile, Loading: s.profile.Loading, Err: s.profile.Err}
}

// FetchUserProfile loads one user's profile.
func (s *Store) FetchUserProfile(ctx context.Context, userID string) error {
	s.profile.mu.Lock()
	s.profile.begin()
	s.profile.mu.Unlock()

	user, err := s.api.FetchUserProfile(ctx, userID)
	if err != nil {
		s.profile.mu.Lock()
		s.profile.fail(err)
		s.profile.mu.Unlock()
		return err
	}

	s.profile.mu.Lock()
	s.profile.profile = user
	s.profile.done()
	s.profile.mu.Unlock()
	return nil
}
