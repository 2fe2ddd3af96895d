// This file implements the public browse endpoint. The full catalog is
// readable by anyone: guests, customers and sellers alike, with no token.
package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/online-market/internal/repository"
)

// CatalogHandler exposes unauthenticated catalog reads.
type CatalogHandler struct {
    Products *repository.ProductRepo
}

func NewCatalogHandler(products *repository.ProductRepo) *CatalogHandler {
    if products == nil {
        panic("nil repository passed to NewCatalogHandler")
    }
    return &CatalogHandler{Products: products}
}

// ListProducts handles GET /v1/products and returns every product in the
// catalog. The route sits behind the Redis response cache when one is
// configured.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    items, err := h.Products.ListAll(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if items == nil {
        items = []*repository.Product{}
    }
    return c.JSON(http.StatusOK, items)
}
