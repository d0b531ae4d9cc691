package entity

import "time"

// Order groups the products a buyer purchased in a single checkout.
// Orders are immutable once created except for status transitions, which are
// owned by the upstream marketplace backend.
type Order struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"user_id"`
	Status    string       `json:"status"`
	Total     int64        `json:"total"` // Order total in the smallest currency unit (paise).
	Items     []*OrderItem `json:"items"`
	CreatedAt time.Time    `json:"created_at"`
}

// OrderItem is a single product line within an order.
type OrderItem struct {
	ID        int64 `json:"id"`
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
	Price     int64 `json:"price"` // Unit price at purchase time.
}
