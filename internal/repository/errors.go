// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver errors. Ownership-filtered mutations that match zero
// rows return sql.ErrNoRows so that "doesn't exist" and "exists but not
// yours" stay indistinguishable to callers.
package repository

import "errors"

// ErrEmailExists is returned when a signup collides with an existing
// account email. Handlers translate this into an HTTP 400 response.
var ErrEmailExists = errors.New("email already exists")

// ErrProductNotFound is returned when a product lookup by id finds no
// row. Handlers translate this into an HTTP 404 response.
var ErrProductNotFound = errors.New("product not found")

// Role names form a closed enum. Signup rejects anything else.
const (
	RoleSeller   = "seller"
	RoleCustomer = "customer"
)
