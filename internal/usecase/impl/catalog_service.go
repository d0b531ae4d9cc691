package impl

import (
	"context"

	"lelekart/internal/domain/entity"
	domainerrors "lelekart/internal/domain/errors"
	"lelekart/internal/domain/repository"
	"lelekart/internal/domain/service"
	"lelekart/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	productRepo   repository.ProductRepository
	qrcodeService service.QRCodeService
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(productRepo repository.ProductRepository, qrcodeService service.QRCodeService) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:   productRepo,
		qrcodeService: qrcodeService,
	}
}

// GetProduct retrieves a single visible product by ID. Drafts, unapproved and
// soft-deleted listings are reported as not found rather than leaked.
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if !product.Visible() {
		return nil, domainerrors.ErrProductNotAvailable
	}

	return product, nil
}

// ProductShareQR returns a PNG QR code deep-linking to the product page.
func (s *catalogService) ProductShareQR(ctx context.Context, id int64) ([]byte, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	qrCode, err := s.qrcodeService.GenerateProductQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR")
	}

	return qrCode, nil
}
