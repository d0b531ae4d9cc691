package postgres

import (
	"context"

	"lelekart/internal/domain/entity"
	"lelekart/internal/domain/repository"
	"lelekart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// AddEntry persists a new cart entry for a user/product pairing.
func (repo *cartRepository) AddEntry(ctx context.Context, entry *entity.CartEntry) error {
	cartM := &model.CartModel{
		UserID:    entry.UserID,
		ProductID: entry.ProductID,
		Quantity:  entry.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		return errors.Wrap(err, "failed to add cart entry")
	}

	// Update the entity with generated values
	entry.ID = cartM.ID
	entry.CreatedAt = cartM.CreatedAt

	return nil
}
