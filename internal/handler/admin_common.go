package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/repository"
)

// AdminHandler bundles the repositories behind the /v1/admin surface:
// catalog management, the weekly schedule, blackouts, booking
// moderation, statistics and bookkeeping.
type AdminHandler struct {
	Services  *repository.ServiceRepo
	Masters   *repository.MasterRepo
	Products  *repository.ProductRepo
	Schedules *repository.ScheduleRepo
	Blackouts *repository.BlackoutRepo
	Bookings  *repository.BookingRepo
	Finance   *repository.FinanceRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any
// dependency is nil.
func NewAdminHandler(services *repository.ServiceRepo, masters *repository.MasterRepo, products *repository.ProductRepo,
	schedules *repository.ScheduleRepo, blackouts *repository.BlackoutRepo, bookings *repository.BookingRepo,
	finance *repository.FinanceRepo) *AdminHandler {
	if services == nil || masters == nil || products == nil || schedules == nil ||
		blackouts == nil || bookings == nil || finance == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{
		Services:  services,
		Masters:   masters,
		Products:  products,
		Schedules: schedules,
		Blackouts: blackouts,
		Bookings:  bookings,
		Finance:   finance,
	}
}

// parseID parses the :id path parameter.
func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// parseDateRange reads optional from/to query parameters in
// "YYYY-MM-DD" form.  The to bound is pushed to the end of its day so
// the range is inclusive.  A malformed value returns ok=false.
func parseDateRange(c echo.Context) (from, to *time.Time, ok bool) {
	if s := c.QueryParam("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, nil, false
		}
		from = &t
	}
	if s := c.QueryParam("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, nil, false
		}
		end := t.Add(24*time.Hour - time.Second)
		to = &end
	}
	return from, to, true
}
