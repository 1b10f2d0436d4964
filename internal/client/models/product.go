package models

import "time"

// Product is a marketplace listing.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category,omitempty"`
	SellerID    string    `json:"sellerId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
