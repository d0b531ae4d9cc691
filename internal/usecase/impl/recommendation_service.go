// Package impl contains the concrete implementations of the application use cases.
package impl

import (
	"context"

	"lelekart/internal/domain/entity"
	"lelekart/internal/domain/repository"
	"lelekart/internal/usecase"

	"github.com/pkg/errors"
)

// candidateSource produces up to quota recommendation candidates, skipping
// any product whose ID is in excludeIDs. Sources are chained in priority
// order; each one only sees the quota left over by the sources before it.
type candidateSource func(ctx context.Context, excludeIDs []int64, quota int) ([]*entity.Product, error)

type recommendationService struct {
	productRepo  repository.ProductRepository
	activityRepo repository.ActivityRepository
}

// NewRecommendationService creates a new recommendation service instance.
func NewRecommendationService(productRepo repository.ProductRepository, activityRepo repository.ActivityRepository) usecase.RecommendationUsecase {
	return &recommendationService{
		productRepo:  productRepo,
		activityRepo: activityRepo,
	}
}

// PersonalizedRecommendations dispatches between the category-scoped path for
// authenticated buyers and the popularity ranking for anonymous visitors.
func (s *recommendationService) PersonalizedRecommendations(ctx context.Context, userID *int64, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		return []*entity.Product{}, nil
	}

	if userID == nil {
		return s.PopularProducts(ctx, limit, nil)
	}

	return s.recommendForUser(ctx, *userID, limit)
}

// recommendForUser builds the category-scoped candidate list for one user,
// padded by popularity and recency. A failed signal query aborts the whole
// request; there is no partial degradation to the fallback.
func (s *recommendationService) recommendForUser(ctx context.Context, userID int64, limit int) ([]*entity.Product, error) {
	purchasedIDs, err := s.activityRepo.PurchasedProductIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load purchased product IDs")
	}

	cartIDs, err := s.activityRepo.CartProductIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart product IDs")
	}

	categories, err := s.activityRepo.PreferredCategories(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preferred categories")
	}

	// Owned and in-cart products are excluded from every tier of the chain.
	excludeIDs := mergeIDs(purchasedIDs, cartIDs)

	sources := make([]candidateSource, 0, 3)
	if len(categories) > 0 {
		sources = append(sources, func(ctx context.Context, excludeIDs []int64, quota int) ([]*entity.Product, error) {
			return s.productRepo.FindVisibleByCategories(ctx, categories, excludeIDs, quota)
		})
	}
	sources = append(sources, s.popularSource, s.newestSource)

	return s.collect(ctx, sources, excludeIDs, limit)
}

// PopularProducts serves the anonymous ranking: popularity first, newest
// products to fill any shortfall.
func (s *recommendationService) PopularProducts(ctx context.Context, limit int, excludeIDs []int64) ([]*entity.Product, error) {
	if limit <= 0 {
		return []*entity.Product{}, nil
	}

	sources := []candidateSource{s.popularSource, s.newestSource}

	return s.collect(ctx, sources, excludeIDs, limit)
}

// SimilarProducts returns visible products sharing the source product's
// category. A missing source product is treated as "no similar items".
func (s *recommendationService) SimilarProducts(ctx context.Context, productID int64, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		return []*entity.Product{}, nil
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return []*entity.Product{}, nil
		}

		return nil, errors.Wrap(err, "failed to find source product")
	}

	similar, err := s.productRepo.FindVisibleByCategories(ctx, []string{product.Category}, []int64{product.ID}, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find similar products")
	}

	return similar, nil
}

// collect drains the candidate sources in order until the quota is filled or
// the sources are exhausted. Every accepted candidate joins the running
// exclusion set so later sources cannot produce duplicates.
func (s *recommendationService) collect(ctx context.Context, sources []candidateSource, excludeIDs []int64, limit int) ([]*entity.Product, error) {
	results := make([]*entity.Product, 0, limit)
	exclude := append([]int64(nil), excludeIDs...)

	for _, source := range sources {
		quota := limit - len(results)
		if quota <= 0 {
			break
		}

		batch, err := source(ctx, exclude, quota)
		if err != nil {
			return nil, err
		}

		for _, product := range batch {
			results = append(results, product)
			exclude = append(exclude, product.ID)
		}
	}

	return results, nil
}

func (s *recommendationService) popularSource(ctx context.Context, excludeIDs []int64, quota int) ([]*entity.Product, error) {
	return s.productRepo.FindPopular(ctx, quota, excludeIDs)
}

func (s *recommendationService) newestSource(ctx context.Context, excludeIDs []int64, quota int) ([]*entity.Product, error) {
	return s.productRepo.FindNewest(ctx, quota, excludeIDs)
}

// mergeIDs concatenates the ID sets, dropping duplicates while preserving
// first-seen order.
func mergeIDs(sets ...[]int64) []int64 {
	seen := make(map[int64]struct{})
	merged := make([]int64, 0)

	for _, set := range sets {
		for _, id := range set {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}

	return merged
}
