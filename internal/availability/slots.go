// Package availability implements the slot-generation engine and the
// booking conflict check.  Everything here is a pure function of its
// inputs: the repository layer loads services, schedule rules, blackouts
// and bookings, and this package computes bookable start times without
// touching storage.
package availability

import (
	"time"

	"github.com/ermekov/barbershop-booking/internal/model"
	"github.com/ermekov/barbershop-booking/internal/schedule"
)

// Interval is a half-open time window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Slots returns the ordered list of free start times ("HH:MM") for one
// day.  The day argument must be midnight of the target date; duration
// is the service duration, which is also the step between candidate
// slots, so candidates are back-to-back and never overlap each other.
//
// A candidate [cur, cur+duration) is emitted when its end does not pass
// the closing time and it overlaps neither the break window nor any
// busy interval.  All overlap tests are half-open, so a slot ending
// exactly at the break start (or a booking start) is accepted.
func Slots(day time.Time, duration time.Duration, d schedule.Day, blackouts []model.Blackout, busy []Interval) []string {
	slots := []string{}
	step := int(duration / time.Minute)
	if step <= 0 {
		return slots
	}
	if Blackedout(day, blackouts) {
		return slots
	}
	for cur := d.Open; cur+step <= d.Close; cur += step {
		if d.HasBreak && cur < d.BreakEnd && d.BreakStart < cur+step {
			continue
		}
		start := day.Add(time.Duration(cur) * time.Minute)
		end := start.Add(duration)
		if overlapsAny(start, end, busy) {
			continue
		}
		slots = append(slots, schedule.FormatClock(cur))
	}
	return slots
}

// Blackedout reports whether the given day falls inside any blackout
// range.  Comparison happens at day granularity and both ends are
// inclusive, matching how administrators enter date ranges.
func Blackedout(day time.Time, blackouts []model.Blackout) bool {
	d := dateOf(day)
	for _, b := range blackouts {
		if !d.Before(dateOf(b.StartAt)) && !d.After(dateOf(b.EndAt)) {
			return true
		}
	}
	return false
}

// Busy converts the non-cancelled bookings of a day into busy intervals
// for the generator.  Cancelled bookings never block.
func Busy(bookings []model.Booking) []Interval {
	out := make([]Interval, 0, len(bookings))
	for i := range bookings {
		if !bookings[i].Blocks() {
			continue
		}
		out = append(out, Interval{Start: bookings[i].StartAt, End: bookings[i].EndAt})
	}
	return out
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		// Half-open intervals: [start,end) overlaps [b.Start,b.End) iff start < b.End && b.Start < end.
		if start.Before(b.End) && b.Start.Before(end) {
			return true
		}
	}
	return false
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
