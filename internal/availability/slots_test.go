package availability

import (
	"reflect"
	"testing"
	"time"

	"github.com/ermekov/barbershop-booking/internal/model"
	"github.com/ermekov/barbershop-booking/internal/schedule"
)

var monday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time { return monday.Add(time.Duration(h*60+m) * time.Minute) }

func TestSlots_Basic(t *testing.T) {
	d := schedule.Day{Open: 9 * 60, Close: 12 * 60}
	got := Slots(monday, 60*time.Minute, d, nil, nil)
	want := []string{"09:00", "10:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSlots_BookingBlocks(t *testing.T) {
	d := schedule.Day{Open: 9 * 60, Close: 12 * 60}
	busy := []Interval{{Start: at(10, 0), End: at(11, 0)}}
	got := Slots(monday, 60*time.Minute, d, nil, busy)
	want := []string{"09:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSlots_CancelledBookingDoesNotBlock(t *testing.T) {
	d := schedule.Day{Open: 9 * 60, Close: 12 * 60}
	bookings := []model.Booking{
		{ServiceID: 1, StartAt: at(10, 0), EndAt: at(11, 0), Status: model.BookingCancelled},
	}
	got := Slots(monday, 60*time.Minute, d, nil, Busy(bookings))
	want := []string{"09:00", "10:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSlots_BreakWindow(t *testing.T) {
	// Break 10:00-10:30 rejects the 10:00 candidate only.  The 09:30
	// slot ends exactly at the break start and must be accepted
	// (half-open semantics).
	d := schedule.Day{Open: 9 * 60, Close: 11 * 60, BreakStart: 10 * 60, BreakEnd: 10*60 + 30, HasBreak: true}
	got := Slots(monday, 30*time.Minute, d, nil, nil)
	want := []string{"09:00", "09:30", "10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSlots_DurationLongerThanWindow(t *testing.T) {
	d := schedule.Day{Open: 9 * 60, Close: 10 * 60}
	if got := Slots(monday, 2*time.Hour, d, nil, nil); len(got) != 0 {
		t.Fatalf("expected no slots, got %v", got)
	}
}

func TestSlots_LastSlotEndsAtClose(t *testing.T) {
	// 11:00-12:00 ends exactly at close and is still bookable.
	d := schedule.Day{Open: 11 * 60, Close: 12 * 60}
	got := Slots(monday, 60*time.Minute, d, nil, nil)
	if len(got) != 1 || got[0] != "11:00" {
		t.Fatalf("expected [11:00], got %v", got)
	}
}

func TestSlots_BlackoutDay(t *testing.T) {
	d := schedule.Day{Open: 9 * 60, Close: 12 * 60}
	blackouts := []model.Blackout{
		{StartAt: monday.AddDate(0, 0, -1), EndAt: monday.AddDate(0, 0, 1)},
	}
	if got := Slots(monday, 60*time.Minute, d, blackouts, nil); len(got) != 0 {
		t.Fatalf("expected no slots on blackout day, got %v", got)
	}
	// Both ends are inclusive: a range ending exactly on the day still blocks.
	edge := []model.Blackout{{StartAt: monday, EndAt: monday}}
	if got := Slots(monday, 60*time.Minute, d, edge, nil); len(got) != 0 {
		t.Fatalf("expected no slots on single-day blackout, got %v", got)
	}
	past := []model.Blackout{{StartAt: monday.AddDate(0, 0, -3), EndAt: monday.AddDate(0, 0, -1)}}
	if got := Slots(monday, 60*time.Minute, d, past, nil); len(got) != 3 {
		t.Fatalf("expected 3 slots after blackout ended, got %v", got)
	}
}

func TestSlots_Idempotent(t *testing.T) {
	d := schedule.Day{Open: 9 * 60, Close: 18 * 60, BreakStart: 13 * 60, BreakEnd: 14 * 60, HasBreak: true}
	busy := []Interval{{Start: at(15, 0), End: at(15, 45)}}
	first := Slots(monday, 45*time.Minute, d, nil, busy)
	second := Slots(monday, 45*time.Minute, d, nil, busy)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs produced %v then %v", first, second)
	}
}

func TestSlots_StayInsideWindow(t *testing.T) {
	d := schedule.Day{Open: 9*60 + 15, Close: 17*60 + 40}
	dur := 50 * time.Minute
	for _, s := range Slots(monday, dur, d, nil, nil) {
		start, err := schedule.ParseClock(s)
		if err != nil {
			t.Fatalf("generated slot %q is not a clock value: %v", s, err)
		}
		if start < d.Open {
			t.Fatalf("slot %s starts before open", s)
		}
		if start+int(dur/time.Minute) > d.Close {
			t.Fatalf("slot %s runs past close", s)
		}
	}
}

func TestSlots_NeverOverlapBusy(t *testing.T) {
	d := schedule.Day{Open: 8 * 60, Close: 20 * 60}
	busy := []Interval{
		{Start: at(9, 30), End: at(10, 15)},
		{Start: at(12, 0), End: at(13, 0)},
		{Start: at(18, 50), End: at(19, 20)},
	}
	dur := 40 * time.Minute
	for _, s := range Slots(monday, dur, d, nil, busy) {
		min, _ := schedule.ParseClock(s)
		start := monday.Add(time.Duration(min) * time.Minute)
		if overlapsAny(start, start.Add(dur), busy) {
			t.Fatalf("slot %s overlaps a busy interval", s)
		}
	}
}
