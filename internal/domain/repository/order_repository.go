package repository

import (
	"context"

	"lelekart/internal/domain/entity"
)

// OrderRepository defines the write operations on orders used by fixture
// seeding. Order lifecycle beyond creation is owned by the marketplace
// backend.
type OrderRepository interface {
	// CreateOrder persists a new order together with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error
}
