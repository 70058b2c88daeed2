package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/repository"
)

// PublicHandler serves the unauthenticated catalog: active services,
// active masters and in-stock products.  Responses are read-only and
// sit behind the Redis response cache.
type PublicHandler struct {
	Services *repository.ServiceRepo
	Masters  *repository.MasterRepo
	Products *repository.ProductRepo
}

// NewPublicHandler constructs a PublicHandler; all dependencies must be
// non-nil.
func NewPublicHandler(services *repository.ServiceRepo, masters *repository.MasterRepo, products *repository.ProductRepo) *PublicHandler {
	if services == nil || masters == nil || products == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{Services: services, Masters: masters, Products: products}
}

// GetServices handles GET /v1/services and lists active services only.
func (h *PublicHandler) GetServices(c echo.Context) error {
	items, err := h.Services.List(c.Request().Context(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetMasters handles GET /v1/masters and lists active masters only.
func (h *PublicHandler) GetMasters(c echo.Context) error {
	items, err := h.Masters.List(c.Request().Context(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetProducts handles GET /v1/products and lists in-stock products only.
func (h *PublicHandler) GetProducts(c echo.Context) error {
	items, err := h.Products.List(c.Request().Context(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
