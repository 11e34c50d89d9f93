package auth

import "errors"

// Auth service errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAgencyNameRequired = errors.New("agency name required")
)
