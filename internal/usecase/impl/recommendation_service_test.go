package impl

import (
	"context"
	"testing"

	"lelekart/internal/domain/entity"
	"lelekart/internal/domain/repository"
	mockRepo "lelekart/internal/mocks/repository"
	"lelekart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recommendationServiceFixtures holds all test dependencies for recommendation service tests.
type recommendationServiceFixtures struct {
	service      usecase.RecommendationUsecase
	productRepo  *mockRepo.MockProductRepository
	activityRepo *mockRepo.MockActivityRepository
}

func createTestRecommendationService(t *testing.T) recommendationServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	service := NewRecommendationService(productRepo, activityRepo)

	return recommendationServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		activityRepo: activityRepo,
	}
}

func testProducts(ids ...int64) []*entity.Product {
	products := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, &entity.Product{ID: id, Approved: true})
	}

	return products
}

func productIDs(products []*entity.Product) []int64 {
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	return ids
}

func TestRecommendationService_PersonalizedRecommendations_ZeroLimit(t *testing.T) {
	fx := createTestRecommendationService(t)

	products, err := fx.service.PersonalizedRecommendations(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestRecommendationService_PersonalizedRecommendations_Anonymous(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindPopular(ctx, 3, []int64(nil)).
		Return(testProducts(5, 4, 3), nil)

	products, err := fx.service.PersonalizedRecommendations(ctx, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 4, 3}, productIDs(products))
}

func TestRecommendationService_PersonalizedRecommendations_AnonymousShortfall(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	// Only one product has ever been ordered; recency fills the rest.
	fx.productRepo.EXPECT().
		FindPopular(ctx, 4, []int64(nil)).
		Return(testProducts(7), nil)

	fx.productRepo.EXPECT().
		FindNewest(ctx, 3, []int64{7}).
		Return(testProducts(9, 8), nil)

	products, err := fx.service.PersonalizedRecommendations(ctx, nil, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9, 8}, productIDs(products))
}

func TestRecommendationService_PersonalizedRecommendations_CategoryScoped(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := int64(42)

	fx.activityRepo.EXPECT().
		PurchasedProductIDs(ctx, userID).
		Return([]int64{1, 2}, nil)

	fx.activityRepo.EXPECT().
		CartProductIDs(ctx, userID).
		Return([]int64{2, 3}, nil)

	fx.activityRepo.EXPECT().
		PreferredCategories(ctx, userID).
		Return([]string{"Electronics"}, nil)

	fx.productRepo.EXPECT().
		FindVisibleByCategories(ctx, []string{"Electronics"}, []int64{1, 2, 3}, 5).
		Return(testProducts(10, 9), nil)

	// The two accepted category candidates join the exclusion set.
	fx.productRepo.EXPECT().
		FindPopular(ctx, 3, []int64{1, 2, 3, 10, 9}).
		Return(testProducts(8), nil)

	fx.productRepo.EXPECT().
		FindNewest(ctx, 2, []int64{1, 2, 3, 10, 9, 8}).
		Return(testProducts(7), nil)

	products, err := fx.service.PersonalizedRecommendations(ctx, &userID, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 9, 8, 7}, productIDs(products))
}

func TestRecommendationService_PersonalizedRecommendations_CategoryFillsQuota(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := int64(42)

	fx.activityRepo.EXPECT().
		PurchasedProductIDs(ctx, userID).
		Return([]int64{1}, nil)

	fx.activityRepo.EXPECT().
		CartProductIDs(ctx, userID).
		Return(nil, nil)

	fx.activityRepo.EXPECT().
		PreferredCategories(ctx, userID).
		Return([]string{"Fashion"}, nil)

	// The category tier fills the quota, so neither fallback runs.
	fx.productRepo.EXPECT().
		FindVisibleByCategories(ctx, []string{"Fashion"}, []int64{1}, 2).
		Return(testProducts(20, 19), nil)

	products, err := fx.service.PersonalizedRecommendations(ctx, &userID, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{20, 19}, productIDs(products))
}

func TestRecommendationService_PersonalizedRecommendations_NoHistory(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := int64(42)

	fx.activityRepo.EXPECT().
		PurchasedProductIDs(ctx, userID).
		Return(nil, nil)

	fx.activityRepo.EXPECT().
		CartProductIDs(ctx, userID).
		Return(nil, nil)

	fx.activityRepo.EXPECT().
		PreferredCategories(ctx, userID).
		Return(nil, nil)

	// No categories means the chain starts at the popularity tier.
	fx.productRepo.EXPECT().
		FindPopular(ctx, 3, []int64(nil)).
		Return(testProducts(5, 4, 3), nil)

	products, err := fx.service.PersonalizedRecommendations(ctx, &userID, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 4, 3}, productIDs(products))
}

func TestRecommendationService_PersonalizedRecommendations_PurchasedSignalError(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := int64(42)

	fx.activityRepo.EXPECT().
		PurchasedProductIDs(ctx, userID).
		Return(nil, errors.New("connection reset"))

	products, err := fx.service.PersonalizedRecommendations(ctx, &userID, 5)
	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to load purchased product IDs")
}

func TestRecommendationService_PersonalizedRecommendations_CartSignalError(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := int64(42)

	fx.activityRepo.EXPECT().
		PurchasedProductIDs(ctx, userID).
		Return([]int64{1}, nil)

	fx.activityRepo.EXPECT().
		CartProductIDs(ctx, userID).
		Return(nil, errors.New("connection reset"))

	products, err := fx.service.PersonalizedRecommendations(ctx, &userID, 5)
	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to load cart product IDs")
}

func TestRecommendationService_PersonalizedRecommendations_CategorySignalError(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := int64(42)

	fx.activityRepo.EXPECT().
		PurchasedProductIDs(ctx, userID).
		Return([]int64{1}, nil)

	fx.activityRepo.EXPECT().
		CartProductIDs(ctx, userID).
		Return([]int64{2}, nil)

	fx.activityRepo.EXPECT().
		PreferredCategories(ctx, userID).
		Return(nil, errors.New("connection reset"))

	products, err := fx.service.PersonalizedRecommendations(ctx, &userID, 5)
	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to load preferred categories")
}

func TestRecommendationService_PopularProducts_FallbackError(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindPopular(ctx, 5, []int64(nil)).
		Return(nil, errors.New("connection reset"))

	products, err := fx.service.PopularProducts(ctx, 5, nil)
	require.Error(t, err)
	assert.Nil(t, products)
}

func TestRecommendationService_SimilarProducts(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	source := &entity.Product{ID: 3, Category: "Electronics", Approved: true}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, int64(3)).
		Return(source, nil)

	fx.productRepo.EXPECT().
		FindVisibleByCategories(ctx, []string{"Electronics"}, []int64{3}, 5).
		Return(testProducts(9, 8), nil)

	products, err := fx.service.SimilarProducts(ctx, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{9, 8}, productIDs(products))
}

func TestRecommendationService_SimilarProducts_SourceNotFound(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	products, err := fx.service.SimilarProducts(ctx, 404, 5)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestRecommendationService_SimilarProducts_ZeroLimit(t *testing.T) {
	fx := createTestRecommendationService(t)

	products, err := fx.service.SimilarProducts(context.Background(), 3, 0)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestRecommendationService_SimilarProducts_LookupError(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, int64(3)).
		Return(nil, errors.New("connection reset"))

	products, err := fx.service.SimilarProducts(ctx, 3, 5)
	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to find source product")
}

func TestMergeIDs(t *testing.T) {
	merged := mergeIDs([]int64{1, 2, 3}, []int64{2, 4, 1})
	assert.Equal(t, []int64{1, 2, 3, 4}, merged)
}
