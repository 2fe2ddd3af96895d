package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/iliyamo/online-market/internal/repository"
)

func newSellerHandler(t *testing.T) (*SellerHandler, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	h := NewSellerHandler(repository.NewProductRepo(db))
	return h, mock, func() { db.Close() }
}

func TestAddProduct(t *testing.T) {
	h, mock, done := newSellerHandler(t)
	defer done()

	// Ownership comes from the verified identity, not from the body.
	mock.ExpectExec("INSERT INTO products").
		WithArgs("Widget", "a widget", int64(1000), "widget.png", "s@x.com").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT created_at FROM products").
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	rec := postJSON(t, h.AddProduct, "/v1/add-product",
		`{"name":"Widget","description":"a widget","price_cents":1000,"image":"widget.png"}`,
		withIdentity("s@x.com", repository.RoleSeller))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Product repository.Product `json:"product"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Product.ID != 1 || resp.Product.SellerEmail != "s@x.com" {
		t.Fatalf("unexpected product: %+v", resp.Product)
	}
}

func TestAddProductAcceptsUnvalidatedFields(t *testing.T) {
	h, mock, done := newSellerHandler(t)
	defer done()

	// Empty name and negative price pass through untouched; field
	// validation is explicitly out of this core.
	mock.ExpectExec("INSERT INTO products").
		WithArgs("", "", int64(-500), "", "s@x.com").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectQuery("SELECT created_at FROM products").
		WithArgs(uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	rec := postJSON(t, h.AddProduct, "/v1/add-product",
		`{"name":"","description":"","price_cents":-500,"image":""}`,
		withIdentity("s@x.com", repository.RoleSeller))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMyProducts(t *testing.T) {
	h, mock, done := newSellerHandler(t)
	defer done()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "price_cents", "image", "seller_email", "created_at"}).
		AddRow(1, "Widget", "a widget", 1000, "widget.png", "s@x.com", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM products WHERE seller_email").
		WithArgs("s@x.com").
		WillReturnRows(rows)

	rec := postJSON(t, h.MyProducts, "/v1/my-products", `{}`,
		withIdentity("s@x.com", repository.RoleSeller))
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

func TestDeleteProduct(t *testing.T) {
	t.Run("owner succeeds", func(t *testing.T) {
		h, mock, done := newSellerHandler(t)
		defer done()
		mock.ExpectExec("DELETE FROM products WHERE id").
			WithArgs(uint64(1), "s@x.com").
			WillReturnResult(sqlmock.NewResult(0, 1))
		rec := postJSON(t, h.DeleteProduct, "/v1/delete-product", `{"product_id":1}`,
			withIdentity("s@x.com", repository.RoleSeller))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("non-owner gets the same 404 as missing", func(t *testing.T) {
		h, mock, done := newSellerHandler(t)
		defer done()
		mock.ExpectExec("DELETE FROM products WHERE id").
			WithArgs(uint64(1), "intruder@x.com").
			WillReturnResult(sqlmock.NewResult(0, 0))
		rec := postJSON(t, h.DeleteProduct, "/v1/delete-product", `{"product_id":1}`,
			withIdentity("intruder@x.com", repository.RoleSeller))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp["error"] != "product not found or not yours" {
			t.Fatalf("unexpected error message: %q", resp["error"])
		}
	})

	t.Run("missing product_id rejected", func(t *testing.T) {
		h, _, done := newSellerHandler(t)
		defer done()
		rec := postJSON(t, h.DeleteProduct, "/v1/delete-product", `{}`,
			withIdentity("s@x.com", repository.RoleSeller))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}
