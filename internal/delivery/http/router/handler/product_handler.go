package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"lelekart/internal/delivery/http/response"
	"lelekart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProductHandler holds dependencies for catalog-related handlers
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(catalogUC usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// GetProduct handles retrieving a single visible product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// GetProductQR handles generating the product share QR code
func (h *ProductHandler) GetProductQR(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Invalid product ID")
	}

	qrCode, err := h.catalogUC.ProductShareQR(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Disposition", "inline; filename=product-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
