package availability

import (
	"time"

	"github.com/ermekov/barbershop-booking/internal/model"
)

// CanBook reports whether a new booking [start, end) for the given
// service is free of conflicts against the supplied bookings.  A
// conflict requires the same service, a non-cancelled status and a
// half-open interval overlap.
//
// This predicate is the single source of truth for the one-active-
// booking-per-window rule.  Slot listing uses it indirectly through
// Busy/Slots; booking creation must evaluate it again at commit time,
// inside the same transaction that inserts the row, so the list/submit
// race cannot double-book a slot.
func CanBook(serviceID uint64, start, end time.Time, existing []model.Booking) bool {
	for i := range existing {
		b := &existing[i]
		if b.ServiceID != serviceID || !b.Blocks() {
			continue
		}
		if start.Before(b.EndAt) && b.StartAt.Before(end) {
			return false
		}
	}
	return true
}
