// This file defines the Product model and repository methods for the
// catalog. A product belongs to exactly one seller and is globally
// readable; only the owning seller may delete it. Deletion is filtered by
// (id, seller_email) so a non-owner observes the same zero-match result as
// a missing product.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Product represents a catalog entry persisted in the database. Prices are
// stored as integer cents; the core performs no field validation, so empty
// names and negative prices are representable on purpose.
type Product struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Image       string    `json:"image"`
	SellerEmail string    `json:"seller_email"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductRepo encapsulates all database queries related to products.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo constructs a ProductRepo with the provided DB handle.
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create inserts a new product. On success the product's ID and CreatedAt
// fields are populated from the stored row.
func (r *ProductRepo) Create(ctx context.Context, p *Product) error {
	const qInsert = "INSERT INTO products (name, description, price_cents, image, seller_email) VALUES (?,?,?,?,?)"
	res, err := r.db.ExecContext(ctx, qInsert, p.Name, p.Description, p.PriceCents, p.Image, p.SellerEmail)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	const qSelect = "SELECT created_at FROM products WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, p.ID).Scan(&p.CreatedAt)
}

// GetByID fetches a product by its id regardless of owner. It returns
// ErrProductNotFound if no row is found.
func (r *ProductRepo) GetByID(ctx context.Context, id uint64) (*Product, error) {
	const q = "SELECT id, name, description, price_cents, image, seller_email, created_at FROM products WHERE id = ?"
	var p Product
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Image, &p.SellerEmail, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListBySeller returns all products owned by a seller ordered by id.
func (r *ProductRepo) ListBySeller(ctx context.Context, sellerEmail string) ([]*Product, error) {
	const q = `SELECT id, name, description, price_cents, image, seller_email, created_at
	           FROM products WHERE seller_email = ? ORDER BY id`
	return r.queryProducts(ctx, q, sellerEmail)
}

// ListAll returns the full catalog regardless of owner. It backs the
// unauthenticated browse endpoint.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*Product, error) {
	const q = `SELECT id, name, description, price_cents, image, seller_email, created_at
	           FROM products ORDER BY id`
	return r.queryProducts(ctx, q)
}

// DeleteByIDAndSeller removes a product only when it belongs to the given
// seller. It returns sql.ErrNoRows when no row is affected (not found /
// not owned); two concurrent deletes of the same id resolve themselves
// because only one can observe an affected row.
func (r *ProductRepo) DeleteByIDAndSeller(ctx context.Context, id uint64, sellerEmail string) error {
	const q = "DELETE FROM products WHERE id = ? AND seller_email = ?"
	res, err := r.db.ExecContext(ctx, q, id, sellerEmail)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ProductRepo) queryProducts(ctx context.Context, q string, args ...any) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Product
	for rows.Next() {
		p := new(Product)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Image, &p.SellerEmail, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
