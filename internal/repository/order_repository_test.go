package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestOrderRepoCreateSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(uint64(42), "Widget", int64(1000), "widget.png", "a widget", "s@x.com", "c@x.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(9, 1))

	repo := NewOrderRepo(db)
	o := &Order{
		ProductID:          42,
		ProductName:        "Widget",
		ProductPriceCents:  1000,
		ProductImage:       "widget.png",
		ProductDescription: "a widget",
		SellerEmail:        "s@x.com",
		CustomerEmail:      "c@x.com",
	}
	if err := repo.Create(context.Background(), o); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if o.ID != 9 {
		t.Fatalf("expected id 9, got %d", o.ID)
	}
	if o.PurchasedAt.IsZero() || time.Since(o.PurchasedAt) > time.Minute {
		t.Fatalf("expected a fresh purchase timestamp, got %v", o.PurchasedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepoLedgerViews(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "product_id", "product_name", "product_price_cents", "product_image", "product_description", "seller_email", "customer_email", "purchased_at"}
	repo := NewOrderRepo(db)

	t.Run("by customer", func(t *testing.T) {
		rows := sqlmock.NewRows(cols).
			AddRow(9, 42, "Widget", 1000, "widget.png", "a widget", "s@x.com", "c@x.com", time.Now())
		mock.ExpectQuery("FROM orders WHERE customer_email").
			WithArgs("c@x.com").
			WillReturnRows(rows)
		items, err := repo.ListByCustomer(context.Background(), "c@x.com")
		if err != nil {
			t.Fatalf("ListByCustomer: %v", err)
		}
		if len(items) != 1 || items[0].ProductName != "Widget" {
			t.Fatalf("unexpected items: %+v", items)
		}
	})

	t.Run("by seller", func(t *testing.T) {
		rows := sqlmock.NewRows(cols).
			AddRow(9, 42, "Widget", 1000, "widget.png", "a widget", "s@x.com", "c@x.com", time.Now())
		mock.ExpectQuery("FROM orders WHERE seller_email").
			WithArgs("s@x.com").
			WillReturnRows(rows)
		items, err := repo.ListBySeller(context.Background(), "s@x.com")
		if err != nil {
			t.Fatalf("ListBySeller: %v", err)
		}
		if len(items) != 1 || items[0].CustomerEmail != "c@x.com" {
			t.Fatalf("unexpected items: %+v", items)
		}
	})
}
