// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific errors. For example, ErrNotFound indicates
// that a lookup matched no row, while ErrLoginExists signals that an
// insert collided with the unique login column.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row. Handlers should
// translate this into the appropriate form error or redirect rather than
// exposing it to the visitor.
var ErrNotFound = errors.New("not found")

// ErrLoginExists is returned when creating an account collides with an
// existing login name. The signup flow treats this as "the account already
// exists" and re-reads it, keeping signup idempotent per login.
var ErrLoginExists = errors.New("login already exists")
