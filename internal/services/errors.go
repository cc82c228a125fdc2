package services

import "errors"

// Common service errors
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveAccount    = errors.New("account is inactive or suspended")
	ErrUnauthorized       = errors.New("not authorized")
	ErrInvalidState       = errors.New("invalid status transition")
	ErrDuplicate          = errors.New("duplicate record")
)
