package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ermekov/barbershop-booking/internal/model"
	"github.com/ermekov/barbershop-booking/internal/utils"
)

// ErrEmailExists is returned when registering with an email that is
// already taken (unique key on users.email).
var ErrEmailExists = errors.New("email already exists")

// UserRepo manages administrator accounts.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create hashes the password with bcrypt at the given cost and inserts
// the user.  Returns the new user ID or ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, email, password, role string, bcryptCost int) (uint64, error) {
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return 0, err
	}
	const q = `INSERT INTO users (email, password_hash, role, is_active) VALUES (?, ?, ?, 1)`
	res, err := r.db.ExecContext(ctx, q, email, hash, role)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail returns an active user by email.  sql.ErrNoRows propagates
// when the account does not exist so login can answer with a generic
// invalid-credentials message.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT id, email, password_hash, role, is_active, created_at, updated_at
	           FROM users WHERE email = ? AND is_active = 1`
	var u model.User
	if err := r.db.QueryRowContext(ctx, q, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns a user by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	const q = `SELECT id, email, password_hash, role, is_active, created_at, updated_at
	           FROM users WHERE id = ?`
	var u model.User
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
