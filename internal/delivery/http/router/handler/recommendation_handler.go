// Package handler contains the Echo request handlers for the HTTP delivery.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"lelekart/config"
	"lelekart/internal/delivery/http/middleware"
	"lelekart/internal/delivery/http/response"
	"lelekart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Fallbacks when the recommendation section is absent from the config file.
const (
	defaultRecommendationLimit = 10
	defaultSimilarLimit        = 5
	defaultMaxLimit            = 100
)

// RecommendationHandler holds dependencies for recommendation-related handlers
type RecommendationHandler struct {
	recommendationUC usecase.RecommendationUsecase
	logger           *slog.Logger

	defaultLimit int
	similarLimit int
	maxLimit     int
}

// NewRecommendationHandler is the constructor for RecommendationHandler
func NewRecommendationHandler(recommendationUC usecase.RecommendationUsecase, cfg *config.Config, logger *slog.Logger) *RecommendationHandler {
	h := &RecommendationHandler{
		recommendationUC: recommendationUC,
		logger:           logger,
		defaultLimit:     defaultRecommendationLimit,
		similarLimit:     defaultSimilarLimit,
		maxLimit:         defaultMaxLimit,
	}

	if rec := cfg.Recommendation; rec != nil {
		if rec.DefaultLimit > 0 {
			h.defaultLimit = rec.DefaultLimit
		}
		if rec.SimilarDefaultLimit > 0 {
			h.similarLimit = rec.SimilarDefaultLimit
		}
		if rec.MaxLimit > 0 {
			h.maxLimit = rec.MaxLimit
		}
	}

	return h
}

// GetRecommendations handles the recommendation feed. Authenticated buyers
// get the personalized list; anonymous visitors get the popularity ranking.
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	limit, ok := h.parseLimit(c.QueryParam("limit"), h.defaultLimit)
	if !ok {
		return response.BadRequest(c, "INVALID_LIMIT", "Invalid result limit")
	}

	var userID *int64
	if id, authenticated := middleware.GetUserID(c); authenticated {
		userID = &id
	}

	products, err := h.recommendationUC.PersonalizedRecommendations(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Recommendations retrieved successfully")
}

// GetSimilarProducts handles similar-product lookup for one product.
func (h *RecommendationHandler) GetSimilarProducts(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Invalid product ID")
	}

	limit, ok := h.parseLimit(c.QueryParam("limit"), h.similarLimit)
	if !ok {
		return response.BadRequest(c, "INVALID_LIMIT", "Invalid result limit")
	}

	products, err := h.recommendationUC.SimilarProducts(c.Request().Context(), productID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Similar products retrieved successfully")
}

// parseLimit resolves the limit query parameter. An absent parameter selects
// fallback; zero is a valid request for an empty list; negatives and garbage
// are rejected; oversized values are clamped to the configured maximum.
func (h *RecommendationHandler) parseLimit(raw string, fallback int) (int, bool) {
	if raw == "" {
		return fallback, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, false
	}

	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	return limit, true
}
