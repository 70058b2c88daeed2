package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/model"
	"github.com/ermekov/barbershop-booking/internal/repository"
	"github.com/ermekov/barbershop-booking/internal/schedule"
)

// GetSchedule handles GET /v1/admin/schedule and returns the stored
// weekly rule set ordered by weekday.
func (h *AdminHandler) GetSchedule(c echo.Context) error {
	rules, err := h.Schedules.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rules})
}

type scheduleRuleReq struct {
	Weekday    int     `json:"weekday"`
	OpenTime   string  `json:"open_time"`
	CloseTime  string  `json:"close_time"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
	Working    bool    `json:"working"`
}

// ReplaceSchedule handles PUT /v1/admin/schedule.  The whole weekly
// rule set is validated and swapped atomically so the slot generator
// never sees a half-written schedule.  An invalid set leaves the stored
// one untouched.
func (h *AdminHandler) ReplaceSchedule(c echo.Context) error {
	var body struct {
		Rules []scheduleRuleReq `json:"rules"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	rules := make([]model.ScheduleRule, 0, len(body.Rules))
	for _, r := range body.Rules {
		rule := model.ScheduleRule{
			Weekday:   r.Weekday,
			OpenTime:  strings.TrimSpace(r.OpenTime),
			CloseTime: strings.TrimSpace(r.CloseTime),
			Working:   r.Working,
		}
		if r.BreakStart != nil && strings.TrimSpace(*r.BreakStart) != "" {
			v := strings.TrimSpace(*r.BreakStart)
			rule.BreakStart = &v
		}
		if r.BreakEnd != nil && strings.TrimSpace(*r.BreakEnd) != "" {
			v := strings.TrimSpace(*r.BreakEnd)
			rule.BreakEnd = &v
		}
		rules = append(rules, rule)
	}
	if err := schedule.ValidateRules(rules); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Schedules.Replace(c.Request().Context(), rules); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "replace failed"})
	}
	stored, err := h.Schedules.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": stored})
}

// ListBlackouts handles GET /v1/admin/blackouts.
func (h *AdminHandler) ListBlackouts(c echo.Context) error {
	items, err := h.Blackouts.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateBlackout handles POST /v1/admin/blackouts.  Dates are
// "YYYY-MM-DD"; both ends are inclusive and start must not come after
// end.
func (h *AdminHandler) CreateBlackout(c echo.Context) error {
	var body struct {
		StartAt string `json:"start_at"`
		EndAt   string `json:"end_at"`
		Reason  string `json:"reason"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	start, err := time.Parse("2006-01-02", strings.TrimSpace(body.StartAt))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_at, expected YYYY-MM-DD"})
	}
	end, err := time.Parse("2006-01-02", strings.TrimSpace(body.EndAt))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end_at, expected YYYY-MM-DD"})
	}
	if start.After(end) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_at must not be after end_at"})
	}
	b := &model.Blackout{StartAt: start, EndAt: end, Reason: strings.TrimSpace(body.Reason)}
	if err := h.Blackouts.Create(c.Request().Context(), b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create blackout"})
	}
	return c.JSON(http.StatusCreated, b)
}

// DeleteBlackout handles DELETE /v1/admin/blackouts/:id.
func (h *AdminHandler) DeleteBlackout(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Blackouts.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrBlackoutNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "blackout not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
