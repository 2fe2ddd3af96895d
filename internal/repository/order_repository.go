// This file defines the order ledger. Orders are append-only snapshots of
// the product at purchase time plus the buyer and seller identities; they
// stay frozen even when the source product is later mutated or deleted.
// There is no update or delete path.
package repository

import (
	"context"
	"database/sql"
	"time"
)

// Order mirrors the 'orders' table. Product fields are denormalized copies
// taken at purchase time, not foreign keys into the live catalog.
type Order struct {
	ID                 uint64    `json:"id"`
	ProductID          uint64    `json:"product_id"`
	ProductName        string    `json:"product_name"`
	ProductPriceCents  int64     `json:"product_price_cents"`
	ProductImage       string    `json:"product_image"`
	ProductDescription string    `json:"product_description"`
	SellerEmail        string    `json:"seller_email"`
	CustomerEmail      string    `json:"customer_email"`
	PurchasedAt        time.Time `json:"purchased_at"`
}

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create appends an order record. The caller fills every field except ID
// and PurchasedAt; the purchase timestamp is taken here so all orders share
// one clock.
func (r *OrderRepo) Create(ctx context.Context, o *Order) error {
	o.PurchasedAt = time.Now().UTC()
	const q = `INSERT INTO orders
	           (product_id, product_name, product_price_cents, product_image, product_description, seller_email, customer_email, purchased_at)
	           VALUES (?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q,
		o.ProductID, o.ProductName, o.ProductPriceCents, o.ProductImage, o.ProductDescription,
		o.SellerEmail, o.CustomerEmail, o.PurchasedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = uint64(id)
	return nil
}

// ListByCustomer returns all orders purchased by the given customer.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerEmail string) ([]*Order, error) {
	const q = `SELECT id, product_id, product_name, product_price_cents, product_image, product_description, seller_email, customer_email, purchased_at
	           FROM orders WHERE customer_email = ? ORDER BY id`
	return r.queryOrders(ctx, q, customerEmail)
}

// ListBySeller returns all orders for products sold by the given seller.
func (r *OrderRepo) ListBySeller(ctx context.Context, sellerEmail string) ([]*Order, error) {
	const q = `SELECT id, product_id, product_name, product_price_cents, product_image, product_description, seller_email, customer_email, purchased_at
	           FROM orders WHERE seller_email = ? ORDER BY id`
	return r.queryOrders(ctx, q, sellerEmail)
}

func (r *OrderRepo) queryOrders(ctx context.Context, q string, args ...any) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Order
	for rows.Next() {
		o := new(Order)
		if err := rows.Scan(&o.ID, &o.ProductID, &o.ProductName, &o.ProductPriceCents, &o.ProductImage, &o.ProductDescription, &o.SellerEmail, &o.CustomerEmail, &o.PurchasedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
