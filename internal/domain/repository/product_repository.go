// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lelekart/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
// All listing queries apply the catalog visibility rule: approved, not a
// draft (NULL counts as published) and not soft-deleted.
type ProductRepository interface {
	// FindProductByID retrieves a single product by its ID regardless of
	// visibility. Callers that serve customer traffic must check Visible().
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindVisibleByCategories retrieves up to limit visible products whose
	// category is in categories, excluding any ID in excludeIDs, ordered by
	// descending product ID (newest first).
	FindVisibleByCategories(ctx context.Context, categories []string, excludeIDs []int64, limit int) ([]*entity.Product, error)

	// FindPopular retrieves up to limit visible products ranked by historical
	// order-item count descending, ties broken by descending product ID,
	// excluding any ID in excludeIDs.
	FindPopular(ctx context.Context, limit int, excludeIDs []int64) ([]*entity.Product, error)

	// FindNewest retrieves up to limit visible products ordered by descending
	// product ID, excluding any ID in excludeIDs.
	FindNewest(ctx context.Context, limit int, excludeIDs []int64) ([]*entity.Product, error)

	// CreateProduct persists a new product listing. Used by seeding tooling;
	// customer-facing writes are owned by the marketplace backend.
	CreateProduct(ctx context.Context, product *entity.Product) error
}
