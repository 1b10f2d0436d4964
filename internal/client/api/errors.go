package api

import "errors"

var (
	// ErrUnavailable wraps transport-level failures: no response arrived.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized wraps 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBadPayload wraps responses whose shape does not match the
	// endpoint's contract.
	ErrBadPayload = errors.New("malformed server response")
)

// APIError is a server-reported error (validation, conflict, server fault)
// carrying the human-readable message extracted from the error payload.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
