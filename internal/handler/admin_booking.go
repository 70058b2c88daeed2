package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/model"
	"github.com/ermekov/barbershop-booking/internal/repository"
)

// ListBookings handles GET /v1/admin/bookings with optional status,
// from and to filters.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	switch status {
	case "", model.BookingPending, model.BookingConfirmed, model.BookingCancelled:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	from, to, ok := parseDateRange(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date filter, expected YYYY-MM-DD"})
	}
	items, err := h.Bookings.List(c.Request().Context(), status, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateBookingStatus handles PATCH /v1/admin/bookings/:id.  Only
// status transitions are possible; bookings are never deleted.  A
// cancellation frees the slot immediately and may carry a reason.
func (h *AdminHandler) UpdateBookingStatus(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status       string  `json:"status"`
		CancelReason *string `json:"cancel_reason"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	status := strings.TrimSpace(body.Status)
	if status != model.BookingConfirmed && status != model.BookingCancelled {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be confirmed or cancelled"})
	}
	b, err := h.Bookings.UpdateStatus(c.Request().Context(), id, status, body.CancelReason)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, b)
}

// GetStats handles GET /v1/admin/stats with optional from/to filters on
// the booking start time.
func (h *AdminHandler) GetStats(c echo.Context) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date filter, expected YYYY-MM-DD"})
	}
	stats, err := h.Bookings.Stats(c.Request().Context(), from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, stats)
}
