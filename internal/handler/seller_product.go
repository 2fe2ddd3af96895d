package handler // handler package contains seller-specific catalog handlers

import (
    "context"      // context with timeout for DB calls
    "database/sql" // sql is imported for sentinel errors like sql.ErrNoRows
    "net/http"     // http provides status code constants
    "time"         // timeouts for DB calls

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/iliyamo/online-market/internal/repository" // repository holds database models
)

// SellerHandler bundles the repositories sellers need to manage their
// catalog entries.
type SellerHandler struct {
    Products *repository.ProductRepo // Products provides catalog persistence
}

// NewSellerHandler constructs a SellerHandler and panics if the dependency is nil.
func NewSellerHandler(products *repository.ProductRepo) *SellerHandler {
    if products == nil {
        panic("nil repository passed to NewSellerHandler")
    }
    return &SellerHandler{Products: products}
}

type addProductReq struct {
    Name        string `json:"name"`
    Description string `json:"description"`
    PriceCents  int64  `json:"price_cents"`
    Image       string `json:"image"`
}

type productIDReq struct {
    ProductID uint64 `json:"product_id"`
}

// AddProduct handles POST /v1/add-product. The route group enforces the
// seller role; ownership of the new product is taken from the verified
// token, never from the body. Field contents are accepted as-is: this core
// deliberately performs no validation of name, price or image.
func (h *SellerHandler) AddProduct(c echo.Context) error {
    email, err := currentEmail(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req addProductReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    p := &repository.Product{
        Name:        req.Name,
        Description: req.Description,
        PriceCents:  req.PriceCents,
        Image:       req.Image,
        SellerEmail: email,
    }
    if err := h.Products.Create(ctx, p); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create product"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"message": "product added successfully", "product": p})
}

// MyProducts handles POST /v1/my-products and returns the seller's own
// catalog entries.
func (h *SellerHandler) MyProducts(c echo.Context) error {
    email, err := currentEmail(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    items, err := h.Products.ListBySeller(ctx, email)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if items == nil {
        items = []*repository.Product{}
    }
    return c.JSON(http.StatusOK, items)
}

// DeleteProduct handles POST /v1/delete-product. The delete is filtered by
// (id, seller_email), so a zero-match covers both "doesn't exist" and
// "exists but not yours" with one 404; existence is never leaked to a
// non-owner.
func (h *SellerHandler) DeleteProduct(c echo.Context) error {
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

    if err := h.Products.DeleteByIDAndSeller(ctx, req.ProductID, email); err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found or not yours"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "product deleted successfully"})
}
