// Package usecase defines the application-level interfaces consumed by the
// delivery layer.
package usecase

import (
	"context"

	"lelekart/internal/domain/entity"
)

// RecommendationUsecase defines the recommendation read path. All methods are
// stateless and safe for concurrent use; failures of the underlying store
// propagate to the caller unmodified.
type RecommendationUsecase interface {
	// PersonalizedRecommendations returns up to limit visible products for
	// the given user, drawn first from the user's preferred categories and
	// padded by popularity and recency. A nil userID selects the anonymous
	// path, which serves the popularity ranking directly. Products the user
	// has purchased or currently has in the cart are never returned.
	PersonalizedRecommendations(ctx context.Context, userID *int64, limit int) ([]*entity.Product, error)

	// PopularProducts returns up to limit visible products ranked by
	// historical order count, excluding excludeIDs, padded by newest
	// products when order history alone cannot fill the quota.
	PopularProducts(ctx context.Context, limit int, excludeIDs []int64) ([]*entity.Product, error)

	// SimilarProducts returns up to limit visible products sharing the given
	// product's category, excluding the product itself. An unknown productID
	// yields an empty list, not an error.
	SimilarProducts(ctx context.Context, productID int64, limit int) ([]*entity.Product, error)
}
