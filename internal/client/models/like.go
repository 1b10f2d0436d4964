package models

// Like is a join record: its existence means "this user likes this post".
// The server enforces at most one per (userId, postId) pair.
type Like struct {
	PostID string `json:"postId"`
	UserID string `json:"userId"`
}
