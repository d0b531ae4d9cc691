// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"lelekart/internal/domain/entity"
	"lelekart/internal/domain/repository"
	"lelekart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// visibleProducts narrows a query to customer-facing rows:
// approved, published (NULL is_draft counts as published) and not soft-deleted.
func visibleProducts(db *gorm.DB) *gorm.DB {
	return db.
		Where("products.approved = ?", true).
		Where("(products.is_draft IS NULL OR products.is_draft = ?)", false).
		Where("products.deleted = ?", false)
}

// excludeProductIDs adds the NOT IN predicate only when the exclusion set is
// non-empty, keeping the rendered SQL free of empty IN lists.
func excludeProductIDs(db *gorm.DB, excludeIDs []int64) *gorm.DB {
	if len(excludeIDs) == 0 {
		return db
	}

	return db.Where("products.id NOT IN ?", excludeIDs)
}

// FindProductByID retrieves a single product by its ID regardless of visibility.
func (repo *productRepository) FindProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindVisibleByCategories retrieves visible products in the given categories,
// newest first.
func (repo *productRepository) FindVisibleByCategories(ctx context.Context, categories []string, excludeIDs []int64, limit int) ([]*entity.Product, error) {
	if len(categories) == 0 || limit <= 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	query := visibleProducts(repo.db.WithContext(ctx).Model(&model.ProductModel{})).
		Where("products.category IN ?", categories)
	query = excludeProductIDs(query, excludeIDs)

	if err := query.
		Order("products.id DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by categories")
	}

	return toProductDomainSlice(productModels), nil
}

// FindPopular ranks visible products by historical order-item count, ties
// broken by descending ID so newer listings win.
func (repo *productRepository) FindPopular(ctx context.Context, limit int, excludeIDs []int64) ([]*entity.Product, error) {
	if limit <= 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	query := visibleProducts(repo.db.WithContext(ctx).
		Table("products").
		Select("products.*").
		Joins("LEFT JOIN order_items ON order_items.product_id = products.id"))
	query = excludeProductIDs(query, excludeIDs)

	if err := query.
		Group("products.id").
		Order("COUNT(order_items.id) DESC, products.id DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find popular products")
	}

	return toProductDomainSlice(productModels), nil
}

// FindNewest retrieves the newest visible products by descending ID.
func (repo *productRepository) FindNewest(ctx context.Context, limit int, excludeIDs []int64) ([]*entity.Product, error) {
	if limit <= 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	query := visibleProducts(repo.db.WithContext(ctx).Model(&model.ProductModel{}))
	query = excludeProductIDs(query, excludeIDs)

	if err := query.
		Order("products.id DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find newest products")
	}

	return toProductDomainSlice(productModels), nil
}

// CreateProduct persists a new product listing.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		Approved:    data.Approved,
		IsDraft:     data.IsDraft,
		Deleted:     data.Deleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		Approved:    data.Approved,
		IsDraft:     data.IsDraft,
		Deleted:     data.Deleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
