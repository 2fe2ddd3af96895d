package handler // handler package contains order ledger handlers

import (
    "context" // context with timeout for DB calls
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/online-market/internal/queue"
    "github.com/iliyamo/online-market/internal/repository"
    queue_publisher "github.com/iliyamo/online-market/internal/service"
)

// OrderHandler bundles the repositories needed to record and list
// purchases. Orders snapshot the product at purchase time, so the handler
// reads the catalog and writes the ledger without any cross-table
// transaction; the two stores never need to agree after the fact.
type OrderHandler struct {
    Products *repository.ProductRepo
    Orders   *repository.OrderRepo
}

func NewOrderHandler(products *repository.ProductRepo, orders *repository.OrderRepo) *OrderHandler {
    if products == nil || orders == nil {
        panic("nil repository passed to NewOrderHandler")
    }
    return &OrderHandler{Products: products, Orders: orders}
}

// BuyProduct handles POST /v1/buy-product. Any valid token may buy. The
// purchase appends an immutable order record copying the product's fields;
// the cart is untouched and there is no stock to decrement, so repeated
// purchases of the same product are legal. After the record is written an
// order.placed event is published best-effort; broker trouble never fails
// the purchase.
func (h *OrderHandler) BuyProduct(c echo.Context) error {
    email, err := currentEmail(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req productIDReq
    if err := c.Bind(&req); err != nil || req.ProductID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_id required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    p, err := h.Products.GetByID(ctx, req.ProductID)
    if err != nil {
        if err == repository.ErrProductNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }

    o := &repository.Order{
        ProductID:          p.ID,
        ProductName:        p.Name,
        ProductPriceCents:  p.PriceCents,
        ProductImage:       p.Image,
        ProductDescription: p.Description,
        SellerEmail:        p.SellerEmail,
        CustomerEmail:      email,
    }
    if err := h.Orders.Create(ctx, o); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "purchase failed"})
    }

    _ = queue_publisher.PublishOrderPlaced(ctx, queue.OrderPlacedEvent{
        OrderID:           o.ID,
        ProductID:         o.ProductID,
        ProductName:       o.ProductName,
        ProductPriceCents: o.ProductPriceCents,
        SellerEmail:       o.SellerEmail,
        CustomerEmail:     o.CustomerEmail,
        PurchasedAt:       o.PurchasedAt.Format(time.RFC3339),
    })

    return c.JSON(http.StatusOK, echo.Map{"message": "purchase successful"})
}

// MyPurchases handles POST /v1/my-purchases and returns the caller's
// orders as buyer. The records are snapshots: they keep the product name,
// price and image from purchase time even after the product is deleted.
func (h *OrderHandler) MyPurchases(c echo.Context) error {
    email, err := currentEmail(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    items, err := h.Orders.ListByCustomer(ctx, email)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if items == nil {
        items = []*repository.Order{}
    }
    return c.JSON(http.StatusOK, items)
}

// MyOrders handles POST /v1/my-orders and returns the caller's orders as
// seller. Intended for sellers but open to any valid token; a customer
// simply sees an empty list.
func (h *OrderHandler) MyOrders(c echo.Context) error {
    email, err := currentEmail(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    items, err := h.Orders.ListBySeller(ctx, email)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if items == nil {
        items = []*repository.Order{}
    }
    return c.JSON(http.StatusOK, items)
}
