package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ermekov/barbershop-booking/internal/model"
)

// ErrProductNotFound is returned when a product cannot be located.
var ErrProductNotFound = errors.New("product not found")

// ProductRepo encapsulates all database queries related to marketplace
// products.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo constructs a ProductRepo with the provided DB handle.
func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{db: db} }

const productColumns = "id, name, brand, description, price_cents, category, image, in_stock, volume, created_at, updated_at"

func scanProduct(row interface{ Scan(...any) error }, p *model.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Brand, &p.Description, &p.PriceCents, &p.Category,
		&p.Image, &p.InStock, &p.Volume, &p.CreatedAt, &p.UpdatedAt)
}

// List returns products ordered by id.  When inStockOnly is true the
// public marketplace view filters out unavailable items.
func (r *ProductRepo) List(ctx context.Context, inStockOnly bool) ([]model.Product, error) {
	q := "SELECT " + productColumns + " FROM products"
	if inStockOnly {
		q += " WHERE in_stock = 1"
	}
	q += " ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new product and populates ID and timestamps.
func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	const qInsert = `INSERT INTO products (name, brand, description, price_cents, category, image, in_stock, volume)
	                 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, p.Name, p.Brand, p.Description, p.PriceCents,
		p.Category, p.Image, p.InStock, p.Volume)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	const qSelect = "SELECT " + productColumns + " FROM products WHERE id = ?"
	return scanProduct(r.db.QueryRowContext(ctx, qSelect, p.ID), p)
}

// Update rewrites a product's fields, returning ErrProductNotFound when
// the row does not exist.
func (r *ProductRepo) Update(ctx context.Context, p *model.Product) error {
	const q = `UPDATE products SET name = ?, brand = ?, description = ?, price_cents = ?, category = ?,
	           image = ?, in_stock = ?, volume = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, p.Name, p.Brand, p.Description, p.PriceCents,
		p.Category, p.Image, p.InStock, p.Volume, p.ID); err != nil {
		return err
	}
	const qSelect = "SELECT " + productColumns + " FROM products WHERE id = ?"
	if err := scanProduct(r.db.QueryRowContext(ctx, qSelect, p.ID), p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

// Delete removes a product.  ErrProductNotFound when no row matched.
func (r *ProductRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}
