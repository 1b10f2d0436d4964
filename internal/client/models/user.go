// Package models defines client-side data models mirroring the backend's
// JSON payloads.
package models

// User is a profile summary as returned by the backend.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}
