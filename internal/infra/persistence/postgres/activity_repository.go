package postgres

import (
	"context"

	"lelekart/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// PurchasedProductIDs returns the distinct product IDs across all order items
// of the user's orders.
func (repo *activityRepository) PurchasedProductIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64

	if err := repo.db.WithContext(ctx).
		Table("order_items").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ?", userID).
		Distinct().
		Pluck("order_items.product_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load purchased product IDs")
	}

	return ids, nil
}

// CartProductIDs returns the distinct product IDs currently in the user's cart.
func (repo *activityRepository) CartProductIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64

	if err := repo.db.WithContext(ctx).
		Table("carts").
		Where("user_id = ?", userID).
		Distinct().
		Pluck("product_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load cart product IDs")
	}

	return ids, nil
}

// PreferredCategories returns the distinct non-empty categories across the
// user's order history and cart. Deliberately one query over both join paths
// rather than a union of PurchasedProductIDs and CartProductIDs; the result
// may diverge from those sets under concurrent writes, which is acceptable
// for advisory ranking.
func (repo *activityRepository) PreferredCategories(ctx context.Context, userID int64) ([]string, error) {
	var categories []string

	query := `
		SELECT DISTINCT p.category
		FROM products p
		LEFT JOIN order_items oi ON oi.product_id = p.id
		LEFT JOIN orders o ON o.id = oi.order_id
		LEFT JOIN carts c ON c.product_id = p.id
		WHERE p.category IS NOT NULL
		  AND p.category <> ''
		  AND (o.user_id = ? OR c.user_id = ?)
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, userID, userID).
		Scan(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load preferred categories")
	}

	return categories, nil
}
