package handler // handler defines http handlers

import (
    "errors" // errors provides the sentinel used in currentEmail

    "github.com/labstack/echo/v4" // echo defines request context types
)

// currentEmail extracts the verified account email from echo.Context.  The
// TokenAuth middleware stores it under "email" after verifying the body
// token; a missing or empty value means the route was wired without the
// middleware and the request must be rejected.
func currentEmail(c echo.Context) (string, error) {
    v := c.Get("email")
    if s, ok := v.(string); ok && s != "" {
        return s, nil
    }
    return "", errors.New("no verified identity in context")
}
