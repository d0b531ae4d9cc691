package entity

import "time"

// CartEntry is a user/product pairing representing an unpurchased intent
// signal. Entries are created on add-to-cart and removed on purchase or
// explicit removal.
type CartEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
