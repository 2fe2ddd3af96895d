// This file defines the cart repository. A cart item is a bare
// (customer_email, product_id) pair referencing the catalog; there is no
// unique key on the pair, so repeated add-to-cart calls insert additional
// rows on purpose. Viewing the cart joins against products and returns the
// set of distinct products: duplicate rows collapse to one entry, and items
// whose product has been deleted are silently dropped.
package repository

import (
	"context"
	"database/sql"
)

// CartItem mirrors the 'cart_items' table.
type CartItem struct {
	ID            uint64 `json:"id"`
	CustomerEmail string `json:"customer_email"`
	ProductID     uint64 `json:"product_id"`
}

type CartRepo struct {
	db *sql.DB
}

func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{db: db}
}

// Add inserts a cart item for the customer. The product id is not checked
// against the catalog; a dangling reference is legal and disappears from
// view through the join in ListProducts.
func (r *CartRepo) Add(ctx context.Context, customerEmail string, productID uint64) error {
	const q = "INSERT INTO cart_items (customer_email, product_id) VALUES (?,?)"
	_, err := r.db.ExecContext(ctx, q, customerEmail, productID)
	return err
}

// ListProducts returns the distinct products referenced by the customer's
// cart. A product carted more than once appears a single time, and the
// INNER JOIN omits items whose product no longer exists.
func (r *CartRepo) ListProducts(ctx context.Context, customerEmail string) ([]*Product, error) {
	const q = `SELECT DISTINCT p.id, p.name, p.description, p.price_cents, p.image, p.seller_email, p.created_at
	           FROM cart_items ci
	           JOIN products p ON p.id = ci.product_id
	           WHERE ci.customer_email = ?
	           ORDER BY p.id`
	rows, err := r.db.QueryContext(ctx, q, customerEmail)
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

// Remove deletes the customer's cart items for a product. It returns
// sql.ErrNoRows when nothing matched, which handlers report as "not in
// cart" without distinguishing whether the item ever existed.
func (r *CartRepo) Remove(ctx context.Context, customerEmail string, productID uint64) error {
	const q = "DELETE FROM cart_items WHERE customer_email = ? AND product_id = ?"
	res, err := r.db.ExecContext(ctx, q, customerEmail, productID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
