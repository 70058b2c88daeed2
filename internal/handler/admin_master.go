package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/model"
	"github.com/ermekov/barbershop-booking/internal/repository"
)

type masterReq struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Avatar         string `json:"avatar"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	IsActive       *bool  `json:"is_active"`
}

func (r *masterReq) toModel(id uint64) (*model.Master, string, bool) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, "name is required", false
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.Master{
		ID:             id,
		Name:           name,
		Specialization: strings.TrimSpace(r.Specialization),
		Avatar:         strings.TrimSpace(r.Avatar),
		Phone:          strings.TrimSpace(r.Phone),
		Email:          strings.ToLower(strings.TrimSpace(r.Email)),
		IsActive:       active,
	}, "", true
}

// ListMasters handles GET /v1/admin/masters including inactive ones.
func (h *AdminHandler) ListMasters(c echo.Context) error {
	items, err := h.Masters.List(c.Request().Context(), false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateMaster handles POST /v1/admin/masters.
func (h *AdminHandler) CreateMaster(c echo.Context) error {
	var req masterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	m, msg, ok := req.toModel(0)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Masters.Create(c.Request().Context(), m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create master"})
	}
	return c.JSON(http.StatusCreated, m)
}

// UpdateMaster handles PUT /v1/admin/masters/:id.
func (h *AdminHandler) UpdateMaster(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req masterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	m, msg, okReq := req.toModel(id)
	if !okReq {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Masters.Update(c.Request().Context(), m); err != nil {
		if err == repository.ErrMasterNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "master not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// DeleteMaster handles DELETE /v1/admin/masters/:id.
func (h *AdminHandler) DeleteMaster(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Masters.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrMasterNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "master not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
