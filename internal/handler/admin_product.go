package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/model"
	"github.com/ermekov/barbershop-booking/internal/repository"
)

type productReq struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Description string `json:"description"`
	PriceCents  uint32 `json:"price_cents"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	InStock     *bool  `json:"in_stock"`
	Volume      string `json:"volume"`
}

func (r *productReq) toModel(id uint64) (*model.Product, string, bool) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, "name is required", false
	}
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	return &model.Product{
		ID:          id,
		Name:        name,
		Brand:       strings.TrimSpace(r.Brand),
		Description: strings.TrimSpace(r.Description),
		PriceCents:  r.PriceCents,
		Category:    strings.TrimSpace(r.Category),
		Image:       strings.TrimSpace(r.Image),
		InStock:     inStock,
		Volume:      strings.TrimSpace(r.Volume),
	}, "", true
}

// ListProducts handles GET /v1/admin/products including out-of-stock
// items.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	items, err := h.Products.List(c.Request().Context(), false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateProduct handles POST /v1/admin/products.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p, msg, ok := req.toModel(0)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Products.Create(c.Request().Context(), p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create product"})
	}
	return c.JSON(http.StatusCreated, p)
}

// UpdateProduct handles PUT /v1/admin/products/:id.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p, msg, okReq := req.toModel(id)
	if !okReq {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Products.Update(c.Request().Context(), p); err != nil {
		if err == repository.ErrProductNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteProduct handles DELETE /v1/admin/products/:id.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Products.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrProductNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
