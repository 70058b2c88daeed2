package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ermekov/barbershop-booking/internal/model"
)

// ErrMasterNotFound is returned when a master cannot be located.
var ErrMasterNotFound = errors.New("master not found")

// MasterRepo encapsulates all database queries related to masters.
type MasterRepo struct {
	db *sql.DB
}

// NewMasterRepo constructs a MasterRepo with the provided DB handle.
func NewMasterRepo(db *sql.DB) *MasterRepo { return &MasterRepo{db: db} }

const masterColumns = "id, name, specialization, avatar, phone, email, is_active, created_at, updated_at"

func scanMaster(row interface{ Scan(...any) error }, m *model.Master) error {
	return row.Scan(&m.ID, &m.Name, &m.Specialization, &m.Avatar, &m.Phone, &m.Email,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt)
}

// List returns masters ordered by id, optionally only active ones.
func (r *MasterRepo) List(ctx context.Context, activeOnly bool) ([]model.Master, error) {
	q := "SELECT " + masterColumns + " FROM masters"
	if activeOnly {
		q += " WHERE is_active = 1"
	}
	q += " ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Master, 0)
	for rows.Next() {
		var m model.Master
		if err := scanMaster(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new master and populates ID and timestamps.
func (r *MasterRepo) Create(ctx context.Context, m *model.Master) error {
	const qInsert = `INSERT INTO masters (name, specialization, avatar, phone, email, is_active)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, m.Name, m.Specialization, m.Avatar, m.Phone, m.Email, m.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	const qSelect = "SELECT " + masterColumns + " FROM masters WHERE id = ?"
	return scanMaster(r.db.QueryRowContext(ctx, qSelect, m.ID), m)
}

// Update rewrites a master's fields, returning ErrMasterNotFound when
// the row does not exist.
func (r *MasterRepo) Update(ctx context.Context, m *model.Master) error {
	const q = `UPDATE masters SET name = ?, specialization = ?, avatar = ?, phone = ?, email = ?, is_active = ?
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, m.Name, m.Specialization, m.Avatar, m.Phone, m.Email, m.IsActive, m.ID); err != nil {
		return err
	}
	const qSelect = "SELECT " + masterColumns + " FROM masters WHERE id = ?"
	if err := scanMaster(r.db.QueryRowContext(ctx, qSelect, m.ID), m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMasterNotFound
		}
		return err
	}
	return nil
}

// Delete removes a master.  ErrMasterNotFound when no row matched.
func (r *MasterRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM masters WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMasterNotFound
	}
	return nil
}
