package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/model"
	"github.com/ermekov/barbershop-booking/internal/repository"
)

type financeReq struct {
	Kind        string `json:"kind"`
	AmountCents uint32 `json:"amount_cents"`
	Category    string `json:"category"`
	Description string `json:"description"`
	OccurredOn  string `json:"occurred_on"` // "YYYY-MM-DD"
}

func (r *financeReq) toModel(id uint64) (*model.FinanceRecord, string, bool) {
	kind := strings.TrimSpace(r.Kind)
	if kind != model.FinanceIncome && kind != model.FinanceExpense {
		return nil, "kind must be income or expense", false
	}
	if r.AmountCents == 0 {
		return nil, "amount_cents must be positive", false
	}
	category := strings.TrimSpace(r.Category)
	if category == "" {
		return nil, "category is required", false
	}
	occurred, err := time.Parse("2006-01-02", strings.TrimSpace(r.OccurredOn))
	if err != nil {
		return nil, "invalid occurred_on, expected YYYY-MM-DD", false
	}
	return &model.FinanceRecord{
		ID:          id,
		Kind:        kind,
		AmountCents: r.AmountCents,
		Category:    category,
		Description: strings.TrimSpace(r.Description),
		OccurredOn:  occurred,
	}, "", true
}

// ListFinance handles GET /v1/admin/finance with optional kind, from
// and to filters on the business date.
func (h *AdminHandler) ListFinance(c echo.Context) error {
	kind := strings.TrimSpace(c.QueryParam("kind"))
	switch kind {
	case "", model.FinanceIncome, model.FinanceExpense:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid kind"})
	}
	from, to, ok := parseDateRange(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date filter, expected YYYY-MM-DD"})
	}
	items, err := h.Finance.List(c.Request().Context(), kind, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateFinance handles POST /v1/admin/finance.
func (h *AdminHandler) CreateFinance(c echo.Context) error {
	var req financeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	f, msg, ok := req.toModel(0)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Finance.Create(c.Request().Context(), f); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create record"})
	}
	return c.JSON(http.StatusCreated, f)
}

// UpdateFinance handles PUT /v1/admin/finance/:id.
func (h *AdminHandler) UpdateFinance(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req financeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	f, msg, okReq := req.toModel(id)
	if !okReq {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Finance.Update(c.Request().Context(), f); err != nil {
		if err == repository.ErrFinanceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "record not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, f)
}

// DeleteFinance handles DELETE /v1/admin/finance/:id.
func (h *AdminHandler) DeleteFinance(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Finance.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrFinanceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "record not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// GetFinanceSummary handles GET /v1/admin/finance/summary and returns
// income/expense totals plus a per-category breakdown.
func (h *AdminHandler) GetFinanceSummary(c echo.Context) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date filter, expected YYYY-MM-DD"})
	}
	sum, err := h.Finance.Summary(c.Request().Context(), from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, sum)
}
