package impl

import (
	"context"
	"testing"

	"lelekart/internal/domain/entity"
	domainerrors "lelekart/internal/domain/errors"
	"lelekart/internal/domain/repository"
	mockRepo "lelekart/internal/mocks/repository"
	mockService "lelekart/internal/mocks/service"
	"lelekart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service       usecase.CatalogUsecase
	productRepo   *mockRepo.MockProductRepository
	qrcodeService *mockService.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	service := NewCatalogService(productRepo, qrcodeService)

	return catalogServiceFixtures{
		service:       service,
		productRepo:   productRepo,
		qrcodeService: qrcodeService,
	}
}

func TestCatalogService_GetProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	product := &entity.Product{ID: 3, Name: "Bluetooth Earbuds", Approved: true}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, int64(3)).
		Return(product, nil)

	found, err := fx.service.GetProduct(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, product, found)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	found, err := fx.service.GetProduct(ctx, 404)
	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_GetProduct_NotVisible(t *testing.T) {
	draft := true

	tests := []struct {
		name    string
		product *entity.Product
	}{
		{"unapproved", &entity.Product{ID: 1, Approved: false}},
		{"draft", &entity.Product{ID: 2, Approved: true, IsDraft: &draft}},
		{"soft deleted", &entity.Product{ID: 3, Approved: true, Deleted: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()

			fx.productRepo.EXPECT().
				FindProductByID(ctx, tt.product.ID).
				Return(tt.product, nil)

			found, err := fx.service.GetProduct(ctx, tt.product.ID)
			require.Error(t, err)
			assert.Nil(t, found)
			assert.ErrorIs(t, err, domainerrors.ErrProductNotAvailable)
		})
	}
}

func TestCatalogService_GetProduct_RepositoryError(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, int64(3)).
		Return(nil, errors.New("connection reset"))

	found, err := fx.service.GetProduct(ctx, 3)
	require.Error(t, err)
	assert.Nil(t, found)
	assert.Contains(t, err.Error(), "failed to find product")
}

func TestCatalogService_ProductShareQR(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	product := &entity.Product{ID: 3, Approved: true}
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, int64(3)).
		Return(product, nil)

	fx.qrcodeService.EXPECT().
		GenerateProductQR(int64(3)).
		Return(pngBytes, nil)

	qrCode, err := fx.service.ProductShareQR(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, qrCode)
}

func TestCatalogService_ProductShareQR_ProductNotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	qrCode, err := fx.service.ProductShareQR(ctx, 404)
	require.Error(t, err)
	assert.Nil(t, qrCode)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ProductShareQR_EncodeError(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	product := &entity.Product{ID: 3, Approved: true}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, int64(3)).
		Return(product, nil)

	fx.qrcodeService.EXPECT().
		GenerateProductQR(int64(3)).
		Return(nil, errors.New("content too long"))

	qrCode, err := fx.service.ProductShareQR(ctx, 3)
	require.Error(t, err)
	assert.Nil(t, qrCode)
	assert.Contains(t, err.Error(), "failed to generate product QR")
}
