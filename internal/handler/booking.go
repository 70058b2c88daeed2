package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/availability"
	"github.com/ermekov/barbershop-booking/internal/model"
	"github.com/ermekov/barbershop-booking/internal/queue"
	"github.com/ermekov/barbershop-booking/internal/repository"
	"github.com/ermekov/barbershop-booking/internal/schedule"
	queue_publisher "github.com/ermekov/barbershop-booking/internal/service"
)

// BookingHandler serves the two client-facing booking operations: slot
// listing and booking creation.  It loads schedule rules, blackouts and
// the day's bookings from repositories and delegates the actual slot
// arithmetic to the availability package.
type BookingHandler struct {
	Services  *repository.ServiceRepo
	Schedules *repository.ScheduleRepo
	Blackouts *repository.BlackoutRepo
	Bookings  *repository.BookingRepo
	Loc       *time.Location // business timezone, used for past-date checks
}

// NewBookingHandler constructs a BookingHandler; repositories must be
// non-nil.  A nil location falls back to UTC.
func NewBookingHandler(services *repository.ServiceRepo, schedules *repository.ScheduleRepo, blackouts *repository.BlackoutRepo, bookings *repository.BookingRepo, loc *time.Location) *BookingHandler {
	if services == nil || schedules == nil || blackouts == nil || bookings == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &BookingHandler{
		Services:  services,
		Schedules: schedules,
		Blackouts: blackouts,
		Bookings:  bookings,
		Loc:       loc,
	}
}

// parseDay parses a "YYYY-MM-DD" value into midnight of that date.
// All wall-clock values in the system live in UTC-tagged time.Time so
// database comparisons stay stable.
func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

// localWallClock returns the current business-local wall clock re-tagged
// as UTC, comparable with the stored booking times.
func (h *BookingHandler) localWallClock() time.Time {
	now := time.Now().In(h.Loc)
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
}

// GetSlots handles GET /v1/slots?service_id=&date=YYYY-MM-DD.  It
// returns the ordered free start times for the service on that date.
// A closed day, a blackout or a fully booked day all yield an empty
// list, not an error.
func (h *BookingHandler) GetSlots(c echo.Context) error {
	serviceID, err := strconv.ParseUint(c.QueryParam("service_id"), 10, 64)
	if err != nil || serviceID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service_id"})
	}
	day, err := parseDay(c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
	}

	ctx := c.Request().Context()
	svc, err := h.Services.GetActive(ctx, serviceID)
	if err != nil {
		if err == repository.ErrServiceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	slots, err := h.slotsFor(ctx, svc, day, true)
	if err != nil {
		if err == schedule.ErrClockFormat || err == schedule.ErrInvalidWindow {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "schedule misconfigured"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"service_id": svc.ID,
		"date":       day.Format("2006-01-02"),
		"slots":      slots,
	})
}

// slotsFor computes the free start times for one service and day.  With
// withBusy=false existing bookings are ignored, which yields the set of
// slots permitted by schedule and blackouts alone; booking creation uses
// that to validate the requested start before the transactional conflict
// check takes over.
func (h *BookingHandler) slotsFor(ctx context.Context, svc *model.Service, day time.Time, withBusy bool) ([]string, error) {
	rules, err := h.Schedules.List(ctx)
	if err != nil {
		return nil, err
	}
	d, open, err := schedule.Resolve(int(day.Weekday()), rules)
	if err != nil {
		return nil, err
	}
	if !open {
		return []string{}, nil
	}
	blackouts, err := h.Blackouts.List(ctx)
	if err != nil {
		return nil, err
	}
	var busy []availability.Interval
	if withBusy {
		booked, err := h.Bookings.ListForServiceDay(ctx, svc.ID, day, day.Add(24*time.Hour))
		if err != nil {
			return nil, err
		}
		busy = availability.Busy(booked)
	}
	duration := time.Duration(svc.DurationMin) * time.Minute
	return availability.Slots(day, duration, d, blackouts, busy), nil
}

type createBookingReq struct {
	ServiceID    uint64 `json:"service_id"`
	Date         string `json:"date"` // "YYYY-MM-DD"
	Time         string `json:"time"` // "HH:MM"
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Note         string `json:"note"`
}

// CreateBooking handles POST /v1/bookings.  The requested start must be
// a slot the generator would emit for the schedule and blackouts of that
// day; overlap with existing bookings is re-checked inside the insert
// transaction, so a stale slot list can never double-book.  Conflicts
// answer 409.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.ServiceID == 0 || req.CustomerName == "" || req.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_id, customer_name and phone are required"})
	}
	day, err := parseDay(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
	}
	startMin, err := schedule.ParseClock(strings.TrimSpace(req.Time))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid time, expected HH:MM"})
	}

	ctx := c.Request().Context()
	svc, err := h.Services.GetActive(ctx, req.ServiceID)
	if err != nil {
		if err == repository.ErrServiceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	start := day.Add(time.Duration(startMin) * time.Minute)
	if !start.After(h.localWallClock()) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking time is in the past"})
	}

	// Validate against schedule and blackouts only; busy intervals are
	// the transactional conflict check's job.
	allowed, err := h.slotsFor(ctx, svc, day, false)
	if err != nil {
		if err == schedule.ErrClockFormat || err == schedule.ErrInvalidWindow {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "schedule misconfigured"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	clock := schedule.FormatClock(startMin)
	found := false
	for _, s := range allowed {
		if s == clock {
			found = true
			break
		}
	}
	if !found {
		return c.JSON(http.StatusConflict, echo.Map{"error": "slot unavailable"})
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	// Fail fast on an obviously taken window before opening the insert
	// transaction; the repository repeats this check under row locks.
	booked, err := h.Bookings.ListForServiceDay(ctx, svc.ID, day, day.Add(24*time.Hour))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if !availability.CanBook(svc.ID, start, end, booked) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "slot unavailable"})
	}

	b := &model.Booking{
		Reference:    uuid.NewString(),
		ServiceID:    svc.ID,
		StartAt:      start,
		EndAt:        end,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Note:         strings.TrimSpace(req.Note),
		Status:       model.BookingPending,
	}
	if err := h.Bookings.Create(ctx, b); err != nil {
		if err == repository.ErrSlotUnavailable {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slot unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	// Fire-and-forget: a broker outage must not fail the booking.
	go func(ev queue.BookingCreatedEvent) {
		pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingCreated(pubCtx, ev)
	}(queue.BookingCreatedEvent{
		BookingID:    b.ID,
		Reference:    b.Reference,
		ServiceID:    svc.ID,
		ServiceName:  svc.Name,
		StartAt:      b.StartAt.Format(time.RFC3339),
		EndAt:        b.EndAt.Format(time.RFC3339),
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		PriceCents:   svc.PriceCents,
		CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, b)
}
