package models

// Session is the payload returned by login and register: an opaque bearer
// token plus the authenticated user's profile summary.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
