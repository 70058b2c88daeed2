package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ermekov/barbershop-booking/internal/model"
)

// ErrServiceNotFound is returned when a service cannot be located or,
// for client-facing lookups, when it exists but is inactive.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepo encapsulates all database queries related to services.
type ServiceRepo struct {
	db *sql.DB
}

// NewServiceRepo constructs a ServiceRepo with the provided DB handle.
func NewServiceRepo(db *sql.DB) *ServiceRepo { return &ServiceRepo{db: db} }

const serviceColumns = "id, name, description, duration_min, price_cents, active, created_at, updated_at"

func scanService(row interface{ Scan(...any) error }, s *model.Service) error {
	return row.Scan(&s.ID, &s.Name, &s.Description, &s.DurationMin, &s.PriceCents, &s.Active, &s.CreatedAt, &s.UpdatedAt)
}

// Create inserts a new service.  On success the ID and timestamp fields
// are populated from the stored row.
func (r *ServiceRepo) Create(ctx context.Context, s *model.Service) error {
	const qInsert = `INSERT INTO services (name, description, duration_min, price_cents, active) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, s.Name, s.Description, s.DurationMin, s.PriceCents, s.Active)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	const qSelect = "SELECT " + serviceColumns + " FROM services WHERE id = ?"
	return scanService(r.db.QueryRowContext(ctx, qSelect, s.ID), s)
}

// GetByID fetches a service regardless of its active flag.  It returns
// ErrServiceNotFound when no row exists.
func (r *ServiceRepo) GetByID(ctx context.Context, id uint64) (*model.Service, error) {
	const q = "SELECT " + serviceColumns + " FROM services WHERE id = ?"
	var s model.Service
	if err := scanService(r.db.QueryRowContext(ctx, q, id), &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetActive fetches a service for a client-facing operation.  Unknown
// and inactive services look identical to clients: ErrServiceNotFound.
func (r *ServiceRepo) GetActive(ctx context.Context, id uint64) (*model.Service, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.Active {
		return nil, ErrServiceNotFound
	}
	return s, nil
}

// List returns services ordered by id.  When activeOnly is true,
// inactive services are filtered out (public catalog view).
func (r *ServiceRepo) List(ctx context.Context, activeOnly bool) ([]model.Service, error) {
	q := "SELECT " + serviceColumns + " FROM services"
	if activeOnly {
		q += " WHERE active = 1"
	}
	q += " ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Service, 0)
	for rows.Next() {
		var s model.Service
		if err := scanService(rows, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites the editable fields of a service.  It returns
// ErrServiceNotFound when the row does not exist.  The updated row is
// read back so callers see fresh timestamps.
func (r *ServiceRepo) Update(ctx context.Context, s *model.Service) error {
	const q = `UPDATE services SET name = ?, description = ?, duration_min = ?, price_cents = ?, active = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Description, s.DurationMin, s.PriceCents, s.Active, s.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Zero rows can also mean "no change"; confirm existence.
		if _, err := r.GetByID(ctx, s.ID); err != nil {
			return err
		}
	}
	const qSelect = "SELECT " + serviceColumns + " FROM services WHERE id = ?"
	return scanService(r.db.QueryRowContext(ctx, qSelect, s.ID), s)
}

// Delete removes a service.  ErrServiceNotFound is returned when no row
// was deleted.  Existing bookings keep their service_id; deletion is an
// administrative action for services that were never booked.
func (r *ServiceRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM services WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrServiceNotFound
	}
	return nil
}
