package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/model"
	"github.com/ermekov/barbershop-booking/internal/repository"
)

type serviceReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DurationMin int    `json:"duration_min"`
	PriceCents  uint32 `json:"price_cents"`
	Active      *bool  `json:"active"`
}

func (r *serviceReq) validate() (string, bool) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return "name is required", false
	}
	if r.DurationMin <= 0 {
		return "duration_min must be positive", false
	}
	return "", true
}

// ListServices handles GET /v1/admin/services.  Unlike the public
// catalog it includes inactive services.
func (h *AdminHandler) ListServices(c echo.Context) error {
	items, err := h.Services.List(c.Request().Context(), false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateService handles POST /v1/admin/services.
func (h *AdminHandler) CreateService(c echo.Context) error {
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg, ok := req.validate(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	s := &model.Service{
		Name:        req.Name,
		Description: strings.TrimSpace(req.Description),
		DurationMin: req.DurationMin,
		PriceCents:  req.PriceCents,
		Active:      active,
	}
	if err := h.Services.Create(c.Request().Context(), s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create service"})
	}
	return c.JSON(http.StatusCreated, s)
}

// UpdateService handles PUT /v1/admin/services/:id.  Duration edits
// change the slot grid for future dates only; existing bookings keep
// their stored start and end.
func (h *AdminHandler) UpdateService(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg, ok := req.validate(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	s := &model.Service{
		ID:          id,
		Name:        req.Name,
		Description: strings.TrimSpace(req.Description),
		DurationMin: req.DurationMin,
		PriceCents:  req.PriceCents,
		Active:      active,
	}
	if err := h.Services.Update(c.Request().Context(), s); err != nil {
		if err == repository.ErrServiceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// DeleteService handles DELETE /v1/admin/services/:id.
func (h *AdminHandler) DeleteService(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Services.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrServiceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
