// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a client successfully books a
// slot.  It carries enough information for downstream consumers to log,
// notify, or feed analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID    uint64 `json:"booking_id"`
	Reference    string `json:"reference"`
	ServiceID    uint64 `json:"service_id"`
	ServiceName  string `json:"service_name"`
	StartAt      string `json:"start_at"`
	EndAt        string `json:"end_at"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	PriceCents   uint32 `json:"price_cents"`
	CreatedAt    string `json:"created_at"`
}
