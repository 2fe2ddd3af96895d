package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/iliyamo/online-market/internal/repository"
)

func newCartHandler(t *testing.T) (*CartHandler, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	h := NewCartHandler(repository.NewCartRepo(db))
	return h, mock, func() { db.Close() }
}

func TestAddToCart(t *testing.T) {
	h, mock, done := newCartHandler(t)
	defer done()

	mock.ExpectExec("INSERT INTO cart_items").
		WithArgs("c@x.com", uint64(42)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := postJSON(t, h.AddToCart, "/v1/add-to-cart", `{"product_id":42}`,
		withIdentity("c@x.com", repository.RoleCustomer))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestViewCart(t *testing.T) {
	h, mock, done := newCartHandler(t)
	defer done()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "price_cents", "image", "seller_email", "created_at"}).
		AddRow(42, "Widget", "a widget", 1000, "widget.png", "s@x.com", time.Now())
	mock.ExpectQuery("FROM cart_items ci").
		WithArgs("c@x.com").
		WillReturnRows(rows)

	rec := postJSON(t, h.ViewCart, "/v1/cart", `{}`,
		withIdentity("c@x.com", repository.RoleCustomer))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var items []repository.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Widget" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestViewCartEmptyIsArray(t *testing.T) {
	h, mock, done := newCartHandler(t)
	defer done()

	mock.ExpectQuery("FROM cart_items ci").
		WithArgs("c@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price_cents", "image", "seller_email", "created_at"}))

	rec := postJSON(t, h.ViewCart, "/v1/cart", `{}`,
		withIdentity("c@x.com", repository.RoleCustomer))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	// An empty cart serializes as [] rather than null.
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestRemoveFromCart(t *testing.T) {
	h, mock, done := newCartHandler(t)
	defer done()

	// First removal matches, the second finds nothing: distinct outcomes.
	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs("c@x.com", uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs("c@x.com", uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec := postJSON(t, h.RemoveFromCart, "/v1/remove-from-cart", `{"product_id":42}`,
		withIdentity("c@x.com", repository.RoleCustomer))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, h.RemoveFromCart, "/v1/remove-from-cart", `{"product_id":42}`,
		withIdentity("c@x.com", repository.RoleCustomer))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second removal, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "item not found in cart" {
		t.Fatalf("unexpected error message: %q", resp["error"])
	}
}
