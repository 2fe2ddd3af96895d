package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/handler"
	"github.com/iliyamo/online-market/internal/middleware"
	"github.com/iliyamo/online-market/internal/repository"
)

// RegisterCustomer registers the cart and order endpoints under /v1.
// Adding to the cart is gated on the customer role.  The remaining
// operations accept any valid token: viewing and clearing one's own cart,
// buying, and the two ledger views are scoped by the token's email rather
// than by role.
func RegisterCustomer(e *echo.Echo, ch *handler.CartHandler, oh *handler.OrderHandler, jwtSecret string) {
	customer := e.Group(
		"/v1",
		middleware.TokenAuth(jwtSecret),
		middleware.RequireRole(repository.RoleCustomer),
	)
	customer.POST("/add-to-cart", ch.AddToCart)

	// Any authenticated identity; ownership filters in the repositories do
	// the scoping.
	authed := e.Group("/v1", middleware.TokenAuth(jwtSecret))
	authed.POST("/cart", ch.ViewCart)
	authed.POST("/remove-from-cart", ch.RemoveFromCart)
	authed.POST("/buy-product", oh.BuyProduct)
	authed.POST("/my-purchases", oh.MyPurchases)
	authed.POST("/my-orders", oh.MyOrders)
}
