package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "bytes"         // bytes rebuilds the request body after it has been read
    "encoding/json" // json decodes the token probe from the body
    "io"            // io reads the raw request body
    "net/http"      // HTTP status codes for responses

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/online-market/internal/utils" // token verification
)

// tokenProbe extracts only the bearer credential from the request body.
// Every authenticated call carries its token as a JSON body field rather
// than a header, so the middleware peeks at the body and then restores it
// for the handler's own binding.
type tokenProbe struct {
    Token string `json:"token"`
}

// TokenAuth returns an Echo middleware that validates the body-borne access
// token and injects the verified identity into the request context.  The
// provided secret must match the one used when issuing tokens.  Handlers
// behind this middleware read the identity via c.Get("email") and
// c.Get("role").  Every verification failure surfaces as the same 401
// "invalid token" response; expiry, forgery and malformed structure are
// deliberately indistinguishable to the caller.
func TokenAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Read the whole body once.  It is small JSON on every
            // authenticated route, so buffering it is fine.
            body, err := io.ReadAll(c.Request().Body)
            if err != nil {
                return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
            }
            // Restore the body so the handler can bind its own DTO.
            c.Request().Body = io.NopCloser(bytes.NewReader(body))

            var probe tokenProbe
            if err := json.Unmarshal(body, &probe); err != nil || probe.Token == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            id, err := utils.VerifyAccessToken(secret, probe.Token)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            // Store the verified identity in the context for handlers and
            // downstream middleware.
            c.Set("email", id.Email)
            c.Set("role", id.Role)
            return next(c)
        }
    }
}
