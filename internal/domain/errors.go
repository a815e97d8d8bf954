package domain

import "errors"

// Sentinel errors shared across services and adapters. Handlers map these
// to HTTP statuses; stores translate backend-specific errors into them.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrAlreadyExists = errors.New("already exists")
)
