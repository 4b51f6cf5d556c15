package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrMissingField  = errors.New("required field missing")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrDuplicate     = errors.New("duplicate resource")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("access denied")
)
