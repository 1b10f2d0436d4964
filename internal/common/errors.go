package common

import "errors"

// Sentinel errors shared between the session layer and its callers.
// Match with errors.Is.
var (
	// ErrNotFound is returned by repositories when a key has no value.
	ErrNotFound = errors.New("not found")

	// ErrNoSession indicates a protected action was attempted without a
	// stored token. Recoverable: the user should log in.
	ErrNoSession = errors.New("not logged in")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
