package handler

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// sqlErr1062 mimics the MySQL duplicate-key error the driver returns.
func sqlErr1062() error {
	return errors.New("Error 1062 (23000): Duplicate entry 's@x.com' for key 'users.email'")
}

// withIdentity simulates what TokenAuth stores in the context after a
// successful verification.
func withIdentity(email, role string) func(echo.Context) {
	return func(c echo.Context) {
		c.Set("email", email)
		c.Set("role", role)
	}
}
