package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ermekov/barbershop-booking/internal/model"
)

// ErrBlackoutNotFound is returned when a blackout cannot be located.
var ErrBlackoutNotFound = errors.New("blackout not found")

// BlackoutRepo stores administrator-declared closed date ranges.
type BlackoutRepo struct {
	db *sql.DB
}

// NewBlackoutRepo constructs a BlackoutRepo with the provided DB handle.
func NewBlackoutRepo(db *sql.DB) *BlackoutRepo { return &BlackoutRepo{db: db} }

// List returns all blackouts ordered by start date.  The slot generator
// receives the full list; ranges are few (holidays) so no date filter
// is applied at the query level.
func (r *BlackoutRepo) List(ctx context.Context) ([]model.Blackout, error) {
	const q = `SELECT id, start_at, end_at, reason, created_at FROM blackouts ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Blackout, 0)
	for rows.Next() {
		var (
			b      model.Blackout
			reason sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.StartAt, &b.EndAt, &reason, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.Reason = reason.String
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a blackout range.  Callers validate start <= end.
func (r *BlackoutRepo) Create(ctx context.Context, b *model.Blackout) error {
	const qInsert = `INSERT INTO blackouts (start_at, end_at, reason) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, b.StartAt, b.EndAt, b.Reason)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	const qSelect = `SELECT start_at, end_at, created_at FROM blackouts WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, b.ID).Scan(&b.StartAt, &b.EndAt, &b.CreatedAt)
}

// Delete removes a blackout.  ErrBlackoutNotFound when no row matched.
func (r *BlackoutRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM blackouts WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBlackoutNotFound
	}
	return nil
}
