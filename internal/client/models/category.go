package models

// Category labels posts and products.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
