package model

import "time"

// Master is a barber shown to clients during booking.  Masters are
// display data; availability is governed by the shop-wide schedule,
// not per master.
type Master struct {
	ID             uint64    `json:"id"`              // masters.id
	Name           string    `json:"name"`            // masters.name
	Specialization string    `json:"specialization"`  // masters.specialization
	Avatar         string    `json:"avatar"`          // masters.avatar (URL)
	Phone          string    `json:"phone"`           // masters.phone
	Email          string    `json:"email"`           // masters.email
	IsActive       bool      `json:"is_active"`       // masters.is_active
	CreatedAt      time.Time `json:"created_at"`      // masters.created_at
	UpdatedAt      time.Time `json:"updated_at"`      // masters.updated_at
}
