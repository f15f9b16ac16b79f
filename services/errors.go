package services

import "errors"

// Stable error kinds. Controllers map these with errors.Is:
// Validation → 400, Forbidden → 403, NotFound → 404, Conflict → 409.
var (
	ErrEmptyOrder      = errors.New("order must contain items")
	ErrBadQuantity     = errors.New("quantity must be at least 1")
	ErrDishUnavailable = errors.New("dish not available")
	ErrUnknownStatus   = errors.New("unknown status")

	ErrForbidden       = errors.New("forbidden")
	ErrAlreadyTerminal = errors.New("order already served or cancelled")
	ErrNotCancellable  = errors.New("order can no longer be cancelled")
	ErrNotModifiable   = errors.New("order can no longer be modified")

	ErrAlreadyLinked = errors.New("table already has a linked device")

	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidRole        = errors.New("invalid role")
)
