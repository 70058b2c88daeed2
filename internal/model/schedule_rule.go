package model

import "time"

// ScheduleRule configures the working window for one weekday.  There is
// at most one rule per weekday (0 = Sunday .. 6 = Saturday).  A missing
// rule or Working=false means the shop is closed that day.  Clock values
// are wall-clock strings in "HH:MM" 24h format, local to the business.
//
// Invariants enforced at the storage boundary: open < close; when a
// break is set, break_start < break_end and the break lies within
// [open, close).
type ScheduleRule struct {
	ID         uint64    `json:"id"`                    // schedule_rules.id
	Weekday    int       `json:"weekday"`               // schedule_rules.weekday (0=Sunday..6=Saturday)
	OpenTime   string    `json:"open_time"`             // schedule_rules.open_time ("09:00")
	CloseTime  string    `json:"close_time"`            // schedule_rules.close_time ("18:00")
	BreakStart *string   `json:"break_start,omitempty"` // schedule_rules.break_start (nullable)
	BreakEnd   *string   `json:"break_end,omitempty"`   // schedule_rules.break_end (nullable)
	Working    bool      `json:"working"`               // schedule_rules.working
	UpdatedAt  time.Time `json:"updated_at"`            // schedule_rules.updated_at
}
