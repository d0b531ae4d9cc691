// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lelekart/internal/delivery/http/middleware"
	"lelekart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RecommendationHandler *handler.RecommendationHandler
	ProductHandler        *handler.ProductHandler
	AuthMiddleware        *middleware.AuthMiddleware
	RequestIDMiddleware   *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	recommendationHandler *handler.RecommendationHandler
	productHandler        *handler.ProductHandler
	authMiddleware        *middleware.AuthMiddleware
	requestIDMiddleware   *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		recommendationHandler: params.RecommendationHandler,
		productHandler:        params.ProductHandler,
		authMiddleware:        params.AuthMiddleware,
		requestIDMiddleware:   params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.Use(r.requestIDMiddleware.Process)

	// Recommendation feed: personalized with a valid Bearer token,
	// popularity-ranked otherwise.
	recommendationGroup := e.Group("/recommendations")
	recommendationGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		recommendationGroup.GET("", r.recommendationHandler.GetRecommendations)
	}

	// Public catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.GET("/:id/similar", r.recommendationHandler.GetSimilarProducts)
		productGroup.GET("/:id/qr", r.productHandler.GetProductQR)
	}
}
