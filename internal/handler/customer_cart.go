package handler // handler package contains cart handlers

import (
    "context"      // context with timeout for DB calls
    "database/sql" // sentinel errors such as sql.ErrNoRows
    "net/http"     // status code constants
    "time"         // timeouts for DB calls

    "github.com/labstack/echo/v4" // echo provides request/response handling

    "github.com/iliyamo/online-market/internal/repository" // repository defines models and error types
)

// CartHandler bundles the cart repository. Adding to the cart is customer
// only; viewing and removing accept any valid token.
type CartHandler struct {
    Carts *repository.CartRepo
}

func NewCartHandler(carts *repository.CartRepo) *CartHandler {
    if carts == nil {
        panic("nil repository passed to NewCartHandler")
    }
    return &CartHandler{Carts: carts}
}

// AddToCart handles POST /v1/add-to-cart. The product id is stored without
// an existence check, and the same product may be added repeatedly;
// duplicate rows are allowed.
func (h *CartHandler) AddToCart(c echo.Context) error {
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

    if err := h.Carts.Add(ctx, email, req.ProductID); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not add to cart"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "added to cart"})
}

// ViewCart handles POST /v1/cart and returns the products referenced by the
// caller's cart. Items whose product was deleted are silently omitted by
// the join; that is a property of the read, not an error.
func (h *CartHandler) ViewCart(c echo.Context) error {
    email, err := currentEmail(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    items, err := h.Carts.ListProducts(ctx, email)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if items == nil {
        items = []*repository.Product{}
    }
    return c.JSON(http.StatusOK, items)
}

// RemoveFromCart handles POST /v1/remove-from-cart. Removal is scoped to
// the caller's own cart rows; a zero-match is reported as 404 so a second
// removal of the same product fails distinctly from success.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
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

    if err := h.Carts.Remove(ctx, email, req.ProductID); err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found in cart"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "remove failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "removed from cart"})
}
