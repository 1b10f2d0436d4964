// Package common contains shared constants and sentinel errors used across
// travelfeed components.
package common

const (
	// AuthHeaderName is the HTTP header used to carry the session token on
	// outbound requests.
	AuthHeaderName = "Authorization"

	// BearerPrefix prefixes the token value inside AuthHeaderName.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName identifies a single outbound request for
	// server-side correlation.
	RequestIDHeaderName = "X-Request-Id"
)
