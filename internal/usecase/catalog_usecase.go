package usecase

import (
	"context"

	"lelekart/internal/domain/entity"
)

// CatalogUsecase defines the customer-facing catalog read operations.
type CatalogUsecase interface {
	// GetProduct retrieves a single visible product by ID.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// ProductShareQR returns a PNG QR code deep-linking to the product page.
	// The product must exist and be visible.
	ProductShareQR(ctx context.Context, id int64) ([]byte, error)
}
