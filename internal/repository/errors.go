// Package repository contains data access logic separated from HTTP
// handlers.  This file defines error values shared across repositories.
// Sentinel errors let handlers map storage failures onto HTTP codes
// without inspecting SQL details.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrSlotUnavailable is returned when a booking insert loses the race
// for a time window: either the in-transaction overlap check found an
// active booking, or the unique key on (service_id, active start)
// rejected the row.  Handlers translate this into HTTP 409; the client
// must refetch slots and pick another time.
var ErrSlotUnavailable = errors.New("slot unavailable")

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062), used to fold unique-constraint failures into domain
// sentinels.
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
