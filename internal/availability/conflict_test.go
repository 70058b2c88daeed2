package availability

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ermekov/barbershop-booking/internal/model"
)

func TestCanBook(t *testing.T) {
	existing := []model.Booking{
		{ServiceID: 1, StartAt: at(10, 0), EndAt: at(11, 0), Status: model.BookingPending},
		{ServiceID: 1, StartAt: at(14, 0), EndAt: at(15, 0), Status: model.BookingCancelled},
		{ServiceID: 2, StartAt: at(9, 0), EndAt: at(12, 0), Status: model.BookingConfirmed},
	}

	cases := []struct {
		name       string
		serviceID  uint64
		start, end time.Time
		want       bool
	}{
		{"exact overlap", 1, at(10, 0), at(11, 0), false},
		{"partial overlap tail", 1, at(10, 30), at(11, 30), false},
		{"partial overlap head", 1, at(9, 30), at(10, 30), false},
		{"enclosing", 1, at(9, 0), at(12, 0), false},
		{"adjacent before", 1, at(9, 0), at(10, 0), true},
		{"adjacent after", 1, at(11, 0), at(12, 0), true},
		{"cancelled never blocks", 1, at(14, 0), at(15, 0), true},
		{"other service ignored", 1, at(11, 30), at(12, 0), true},
		{"same window other service", 2, at(10, 0), at(11, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CanBook(tc.serviceID, tc.start, tc.end, existing))
		})
	}
}

// TestCanBook_SerializedCommit simulates the commit-time contract: many
// writers race for the same slot, but the check and the insert happen
// under one lock, so exactly one wins.  In production the lock is the
// row-locking transaction in the booking repository.
func TestCanBook_SerializedCommit(t *testing.T) {
	var (
		mu       sync.Mutex
		bookings []model.Booking
		created  int
	)
	start, end := at(10, 0), at(11, 0)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			if !CanBook(1, start, end, bookings) {
				return
			}
			bookings = append(bookings, model.Booking{
				ServiceID: 1, StartAt: start, EndAt: end, Status: model.BookingPending,
			})
			created++
		}()
	}
	wg.Wait()

	require.Equal(t, 1, created, "exactly one concurrent writer may win the slot")
}
