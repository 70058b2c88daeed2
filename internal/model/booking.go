package model

import "time"

// Booking status values.  A booking is created as pending by a client
// and moved to confirmed or cancelled only by an administrator.
// Cancelled bookings stop blocking their time window immediately;
// confirmed ones block exactly like pending ones.  Bookings are never
// deleted so history stays available for statistics.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking records a client's reservation of one service slot.  The end
// instant is always start + service duration at creation time.
//
// Fields:
//  ID           – primary key identifier.
//  Reference    – UUID handed to the client for lookups.
//  ServiceID    – booked service.
//  StartAt      – slot start (business-local wall clock).
//  EndAt        – slot end.
//  CustomerName – client's name.
//  Phone        – client's phone number.
//  Note         – optional free-form note from the client.
//  Status       – pending, confirmed or cancelled.
//  CancelReason – administrator's reason when cancelled.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last status change.
type Booking struct {
	ID           uint64    `json:"id"`                      // bookings.id
	Reference    string    `json:"reference"`               // bookings.reference
	ServiceID    uint64    `json:"service_id"`              // bookings.service_id
	StartAt      time.Time `json:"start_at"`                // bookings.start_at
	EndAt        time.Time `json:"end_at"`                  // bookings.end_at
	CustomerName string    `json:"customer_name"`           // bookings.customer_name
	Phone        string    `json:"phone"`                   // bookings.phone
	Note         string    `json:"note,omitempty"`          // bookings.note
	Status       string    `json:"status"`                  // bookings.status
	CancelReason *string   `json:"cancel_reason,omitempty"` // bookings.cancel_reason (nullable)
	CreatedAt    time.Time `json:"created_at"`              // bookings.created_at
	UpdatedAt    time.Time `json:"updated_at"`              // bookings.updated_at
}

// Blocks reports whether the booking occupies its time window for the
// purpose of overlap checks.  Only cancelled bookings never block.
func (b *Booking) Blocks() bool {
	return b.Status != BookingCancelled
}
