package model

import "time"

// Service represents a bookable barbershop service as stored in the
// `services` table.  The duration defines the length of every slot
// generated for this service, so edits to it change the slot grid for
// future dates without touching existing bookings.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name of the service.
//  Description – optional longer description.
//  DurationMin – slot length in minutes (always positive).
//  PriceCents  – price in cents.
//  Active      – inactive services are hidden from clients and cannot
//                be booked, but keep their booking history.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Service struct {
	ID          uint64    `json:"id"`           // services.id
	Name        string    `json:"name"`         // services.name
	Description string    `json:"description"`  // services.description
	DurationMin int       `json:"duration_min"` // services.duration_min
	PriceCents  uint32    `json:"price_cents"`  // services.price_cents
	Active      bool      `json:"active"`       // services.active
	CreatedAt   time.Time `json:"created_at"`   // services.created_at
	UpdatedAt   time.Time `json:"updated_at"`   // services.updated_at
}
