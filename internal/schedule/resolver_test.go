package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ermekov/barbershop-booking/internal/model"
)

func strptr(s string) *string { return &s }

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:30")
	require.NoError(t, err)
	require.Equal(t, 9*60+30, min)

	_, err = ParseClock("25:00")
	require.ErrorIs(t, err, ErrClockFormat)
	_, err = ParseClock("nine")
	require.ErrorIs(t, err, ErrClockFormat)
	_, err = ParseClock("")
	require.ErrorIs(t, err, ErrClockFormat)
}

func TestFormatClock(t *testing.T) {
	require.Equal(t, "09:05", FormatClock(9*60+5))
	require.Equal(t, "00:00", FormatClock(0))
	require.Equal(t, "23:59", FormatClock(23*60+59))
}

func TestResolve_Closed(t *testing.T) {
	rules := []model.ScheduleRule{
		{Weekday: 1, OpenTime: "09:00", CloseTime: "18:00", Working: true},
		{Weekday: 2, OpenTime: "09:00", CloseTime: "18:00", Working: false},
	}

	// No rule for Sunday: closed, not an error.
	_, ok, err := Resolve(0, rules)
	require.NoError(t, err)
	require.False(t, ok)

	// Rule exists but working=false.
	_, ok, err = Resolve(2, rules)
	require.NoError(t, err)
	require.False(t, ok)

	d, ok, err := Resolve(1, rules)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Day{Open: 9 * 60, Close: 18 * 60}, d)
}

func TestResolve_Break(t *testing.T) {
	rules := []model.ScheduleRule{{
		Weekday: 3, OpenTime: "10:00", CloseTime: "20:00",
		BreakStart: strptr("13:00"), BreakEnd: strptr("14:00"), Working: true,
	}}
	d, ok, err := Resolve(3, rules)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, d.HasBreak)
	require.Equal(t, 13*60, d.BreakStart)
	require.Equal(t, 14*60, d.BreakEnd)
}

func TestResolve_ConfigErrors(t *testing.T) {
	_, _, err := Resolve(1, []model.ScheduleRule{{Weekday: 1, OpenTime: "late", CloseTime: "18:00", Working: true}})
	require.ErrorIs(t, err, ErrClockFormat)

	_, _, err = Resolve(1, []model.ScheduleRule{{Weekday: 1, OpenTime: "18:00", CloseTime: "09:00", Working: true}})
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, _, err = Resolve(1, []model.ScheduleRule{{
		Weekday: 1, OpenTime: "09:00", CloseTime: "18:00",
		BreakStart: strptr("08:00"), BreakEnd: strptr("09:30"), Working: true,
	}})
	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestValidateRules(t *testing.T) {
	good := []model.ScheduleRule{
		{Weekday: 1, OpenTime: "09:00", CloseTime: "18:00", Working: true},
		{Weekday: 2, Working: false},
	}
	require.NoError(t, ValidateRules(good))

	dup := append(good, model.ScheduleRule{Weekday: 1, OpenTime: "10:00", CloseTime: "12:00", Working: true})
	require.ErrorIs(t, ValidateRules(dup), ErrInvalidWindow)

	require.ErrorIs(t, ValidateRules([]model.ScheduleRule{{Weekday: 7, Working: false}}), ErrInvalidWindow)
}
