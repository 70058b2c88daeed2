package model

import "time"

// Product is a marketplace item (shampoo, wax, etc.) sold at the shop.
// Out-of-stock products are hidden from the public listing but remain
// editable by administrators.
type Product struct {
	ID          uint64    `json:"id"`          // products.id
	Name        string    `json:"name"`        // products.name
	Brand       string    `json:"brand"`       // products.brand
	Description string    `json:"description"` // products.description
	PriceCents  uint32    `json:"price_cents"` // products.price_cents
	Category    string    `json:"category"`    // products.category
	Image       string    `json:"image"`       // products.image (URL)
	InStock     bool      `json:"in_stock"`    // products.in_stock
	Volume      string    `json:"volume"`      // products.volume ("250ml")
	CreatedAt   time.Time `json:"created_at"`  // products.created_at
	UpdatedAt   time.Time `json:"updated_at"`  // products.updated_at
}
