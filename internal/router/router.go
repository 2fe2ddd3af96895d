package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/online-market/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the signup and login endpoints.  Both are
// unauthenticated: signup creates the account, login exchanges a credential
// for a one-hour access token.  Every other mutating endpoint expects that
// token as a field of its JSON body.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/v1/signup", a.Signup)
	e.POST("/v1/login", a.Login)
}

// RegisterPublic registers the unauthenticated catalog browse endpoint.
// Extra middleware (e.g. the Redis response cache) can be attached by the
// caller; no JWT or role middleware is applied so that guests can browse.
func RegisterPublic(e *echo.Echo, p *handler.CatalogHandler, mws ...echo.MiddlewareFunc) {
	// Expose the full product catalog to any visitor.
	e.GET("/v1/products", p.ListProducts, mws...)
}
