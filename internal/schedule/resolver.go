// Package schedule resolves the weekly schedule rule set into a
// concrete working window for a given weekday.  It owns no state and
// performs no I/O; rules are supplied by the repository layer.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/ermekov/barbershop-booking/internal/model"
)

// ErrClockFormat is returned when a rule carries a clock value that is
// not a valid "HH:MM" string.  This is a configuration bug and must be
// surfaced to the administrator, never silently defaulted.
var ErrClockFormat = errors.New("malformed clock value")

// ErrInvalidWindow is returned when a rule's window does not satisfy
// open < close, or its break does not lie within [open, close).
var ErrInvalidWindow = errors.New("invalid schedule window")

// Day is the resolved working window for one weekday.  All values are
// minutes from midnight, business-local.  A zero Day with ok=false from
// Resolve means the shop is closed that day.
type Day struct {
	Open       int  // opening time
	Close      int  // closing time, always > Open
	BreakStart int  // break start when HasBreak
	BreakEnd   int  // break end when HasBreak
	HasBreak   bool // whether a break window is configured
}

// ParseClock converts an "HH:MM" 24h string into minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight back into "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Resolve finds the rule matching weekday (0=Sunday..6=Saturday) and
// returns its validated window.  A missing rule, a non-working rule or
// empty clock values yield ok=false, which is a normal closed day and
// not an error.  Malformed clock strings and inconsistent windows
// return an error so the misconfiguration is visible.
func Resolve(weekday int, rules []model.ScheduleRule) (Day, bool, error) {
	for _, r := range rules {
		if r.Weekday != weekday {
			continue
		}
		if !r.Working || r.OpenTime == "" || r.CloseTime == "" {
			return Day{}, false, nil
		}
		open, err := ParseClock(r.OpenTime)
		if err != nil {
			return Day{}, false, err
		}
		cls, err := ParseClock(r.CloseTime)
		if err != nil {
			return Day{}, false, err
		}
		if open >= cls {
			return Day{}, false, fmt.Errorf("%w: open %s >= close %s", ErrInvalidWindow, r.OpenTime, r.CloseTime)
		}
		d := Day{Open: open, Close: cls}
		if r.BreakStart != nil && r.BreakEnd != nil && *r.BreakStart != "" && *r.BreakEnd != "" {
			bs, err := ParseClock(*r.BreakStart)
			if err != nil {
				return Day{}, false, err
			}
			be, err := ParseClock(*r.BreakEnd)
			if err != nil {
				return Day{}, false, err
			}
			if bs >= be || bs < open || be > cls {
				return Day{}, false, fmt.Errorf("%w: break %s-%s outside %s-%s",
					ErrInvalidWindow, *r.BreakStart, *r.BreakEnd, r.OpenTime, r.CloseTime)
			}
			d.BreakStart, d.BreakEnd, d.HasBreak = bs, be, true
		}
		return d, true, nil
	}
	return Day{}, false, nil
}

// ValidateRules checks a full rule set before it replaces the stored
// weekly schedule.  It enforces weekday range and uniqueness and runs
// every working rule through the same validation as Resolve.
func ValidateRules(rules []model.ScheduleRule) error {
	seen := make(map[int]bool, len(rules))
	for _, r := range rules {
		if r.Weekday < 0 || r.Weekday > 6 {
			return fmt.Errorf("%w: weekday %d out of range", ErrInvalidWindow, r.Weekday)
		}
		if seen[r.Weekday] {
			return fmt.Errorf("%w: duplicate rule for weekday %d", ErrInvalidWindow, r.Weekday)
		}
		seen[r.Weekday] = true
		if _, _, err := Resolve(r.Weekday, []model.ScheduleRule{r}); err != nil {
			return err
		}
	}
	return nil
}
