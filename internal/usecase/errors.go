package usecase

import "errors"

// Boundary error taxonomy. Handlers translate these to HTTP statuses;
// anything else is an internal error.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("user with this email already exists")
)
