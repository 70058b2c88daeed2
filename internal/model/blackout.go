package model

import "time"

// Blackout declares a closed date range (holidays, renovations).  Both
// ends are inclusive and compared at day granularity: any date falling
// inside the range produces an empty slot list regardless of schedule
// or existing bookings.  Invariant: StartAt <= EndAt.
type Blackout struct {
	ID        uint64    `json:"id"`               // blackouts.id
	StartAt   time.Time `json:"start_at"`         // blackouts.start_at (date)
	EndAt     time.Time `json:"end_at"`           // blackouts.end_at (date, inclusive)
	Reason    string    `json:"reason,omitempty"` // blackouts.reason
	CreatedAt time.Time `json:"created_at"`       // blackouts.created_at
}
