package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ermekov/barbershop-booking/internal/model"
)

// ErrBookingNotFound is returned when a booking cannot be located.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo provides persistence for bookings.  Bookings are never
// deleted, only transitioned between statuses, so stats keep their
// history.  All timestamps are business-local wall clock stored as
// DATETIME and read back with loc=UTC for stable comparisons.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, reference, service_id, start_at, end_at, customer_name, phone, note, status, cancel_reason, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }, b *model.Booking) error {
	var cancelReason sql.NullString
	if err := row.Scan(&b.ID, &b.Reference, &b.ServiceID, &b.StartAt, &b.EndAt,
		&b.CustomerName, &b.Phone, &b.Note, &b.Status, &cancelReason,
		&b.CreatedAt, &b.UpdatedAt); err != nil {
		return err
	}
	if cancelReason.Valid {
		v := cancelReason.String
		b.CancelReason = &v
	}
	return nil
}

// ListForServiceDay returns every booking (all statuses) of one service
// whose start falls within [dayStart, dayEnd).  The slot generator
// filters cancelled bookings itself via availability.Busy.
func (r *BookingRepo) ListForServiceDay(ctx context.Context, serviceID uint64, dayStart, dayEnd time.Time) ([]model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings
	           WHERE service_id = ? AND start_at >= ? AND start_at < ?
	           ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, q, serviceID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new pending booking after re-checking that its time
// window is still free.  The check and the insert run inside one
// transaction: the SELECT ... FOR UPDATE locks any overlapping active
// booking rows so a concurrent writer serializes behind us, and the
// unique key on (service_id, active_start) catches the remaining case
// of two inserts racing for an empty window.  Either failure mode
// surfaces as ErrSlotUnavailable.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Half-open overlap: existing.start < new.end AND new.start < existing.end.
	const qCheck = `SELECT COUNT(*) FROM bookings
	                WHERE service_id = ? AND status <> 'cancelled'
	                  AND start_at < ? AND ? < end_at
	                FOR UPDATE`
	var n int
	if err := tx.QueryRowContext(ctx, qCheck, b.ServiceID, b.EndAt, b.StartAt).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrSlotUnavailable
	}

	const qInsert = `INSERT INTO bookings (reference, service_id, start_at, end_at, customer_name, phone, note, status)
	                 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert, b.Reference, b.ServiceID, b.StartAt, b.EndAt,
		b.CustomerName, b.Phone, b.Note, model.BookingPending)
	if err != nil {
		if isDuplicate(err) {
			return ErrSlotUnavailable
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const qSelect = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	if err := scanBooking(tx.QueryRowContext(ctx, qSelect, b.ID), b); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// List returns bookings for the admin dashboard ordered by start time.
// Empty filter values are ignored.
func (r *BookingRepo) List(ctx context.Context, status string, from, to *time.Time) ([]model.Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := make([]any, 0, 3)
	if status != "" {
		q += " AND status = ?"
		args = append(args, status)
	}
	if from != nil {
		q += " AND start_at >= ?"
		args = append(args, *from)
	}
	if to != nil {
		q += " AND start_at <= ?"
		args = append(args, *to)
	}
	q += " ORDER BY start_at"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus transitions a booking to confirmed or cancelled.  The
// cancel reason is stored only for cancellations and cleared otherwise.
// Returns the updated booking or ErrBookingNotFound.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status string, cancelReason *string) (*model.Booking, error) {
	var reason any
	if status == model.BookingCancelled && cancelReason != nil && *cancelReason != "" {
		reason = *cancelReason
	}
	const q = `UPDATE bookings SET status = ?, cancel_reason = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, status, reason, id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Could be a no-op update; verify the row exists before failing.
		var exists int
		if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookings WHERE id = ?", id).Scan(&exists); err != nil {
			return nil, err
		}
		if exists == 0 {
			return nil, ErrBookingNotFound
		}
	}
	const qSelect = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	var b model.Booking
	if err := scanBooking(r.db.QueryRowContext(ctx, qSelect, id), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ServiceBookings is one row of the top-services ranking.
type ServiceBookings struct {
	ServiceID   uint64 `json:"service_id"`
	ServiceName string `json:"service_name"`
	Count       int    `json:"count"`
}

// BookingStats aggregates dashboard numbers for a date range.
type BookingStats struct {
	Total       int               `json:"total"`
	Confirmed   int               `json:"confirmed"`
	Pending     int               `json:"pending"`
	Cancelled   int               `json:"cancelled"`
	TopServices []ServiceBookings `json:"top_services"`
	ByDay       map[string]int    `json:"by_day"`
}

// Stats computes booking statistics over [from, to] on the start time.
// Cancelled bookings count toward the totals but are excluded from the
// top-services ranking and the per-day series.
func (r *BookingRepo) Stats(ctx context.Context, from, to *time.Time) (*BookingStats, error) {
	where := " WHERE 1=1"
	args := make([]any, 0, 2)
	if from != nil {
		where += " AND start_at >= ?"
		args = append(args, *from)
	}
	if to != nil {
		where += " AND start_at <= ?"
		args = append(args, *to)
	}

	stats := &BookingStats{TopServices: []ServiceBookings{}, ByDay: map[string]int{}}

	qCounts := `SELECT
	              COUNT(*),
	              COALESCE(SUM(status = 'confirmed'), 0),
	              COALESCE(SUM(status = 'pending'), 0),
	              COALESCE(SUM(status = 'cancelled'), 0)
	            FROM bookings` + where
	if err := r.db.QueryRowContext(ctx, qCounts, args...).Scan(
		&stats.Total, &stats.Confirmed, &stats.Pending, &stats.Cancelled); err != nil {
		return nil, err
	}

	qTop := `SELECT b.service_id, COALESCE(s.name, 'Unknown'), COUNT(*) AS cnt
	         FROM bookings b LEFT JOIN services s ON s.id = b.service_id` +
		where + ` AND b.status <> 'cancelled'
	         GROUP BY b.service_id, s.name
	         ORDER BY cnt DESC, b.service_id
	         LIMIT 5`
	rows, err := r.db.QueryContext(ctx, qTop, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var sb ServiceBookings
		if err := rows.Scan(&sb.ServiceID, &sb.ServiceName, &sb.Count); err != nil {
			return nil, err
		}
		stats.TopServices = append(stats.TopServices, sb)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	qByDay := `SELECT DATE_FORMAT(start_at, '%Y-%m-%d'), COUNT(*)
	           FROM bookings` + where + ` AND status <> 'cancelled'
	           GROUP BY 1 ORDER BY 1`
	drows, err := r.db.QueryContext(ctx, qByDay, args...)
	if err != nil {
		return nil, err
	}
	defer drows.Close()
	for drows.Next() {
		var (
			day   string
			count int
		)
		if err := drows.Scan(&day, &count); err != nil {
			return nil, err
		}
		stats.ByDay[day] = count
	}
	if err := drows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
