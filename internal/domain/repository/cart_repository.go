package repository

import (
	"context"

	"lelekart/internal/domain/entity"
)

// CartRepository defines the write operations on cart entries used by fixture
// seeding.
type CartRepository interface {
	// AddEntry persists a new cart entry for a user/product pairing.
	AddEntry(ctx context.Context, entry *entity.CartEntry) error
}
