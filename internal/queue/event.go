// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderPlacedEvent is published when a purchase is successfully recorded.
// It carries the order snapshot so downstream consumers can log, notify the
// seller or feed analytics without querying the primary database.
type OrderPlacedEvent struct {
    OrderID           uint64 `json:"order_id"`
    ProductID         uint64 `json:"product_id"`
    ProductName       string `json:"product_name"`
    ProductPriceCents int64  `json:"product_price_cents"`
    SellerEmail       string `json:"seller_email"`
    CustomerEmail     string `json:"customer_email"`
    PurchasedAt       string `json:"purchased_at"`
}
