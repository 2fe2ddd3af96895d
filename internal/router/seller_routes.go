package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/handler"    // seller handlers
	"github.com/iliyamo/online-market/internal/middleware" // token + role middlewares
	"github.com/iliyamo/online-market/internal/repository" // role constants
)

// RegisterSeller registers seller-scoped endpoints under /v1.
// All routes require a valid body token with the seller role.
func RegisterSeller(e *echo.Echo, s *handler.SellerHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1",
		middleware.TokenAuth(jwtSecret),
		middleware.RequireRole(repository.RoleSeller),
	)

	g.POST("/add-product", s.AddProduct)
	g.POST("/my-products", s.MyProducts)
	g.POST("/delete-product", s.DeleteProduct)
}
