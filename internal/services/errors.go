// internal/services/errors.go
package services

import "errors"

// Sentinel errors returned by services. Handlers dispatch on these with
// errors.Is to pick the HTTP status.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidState       = errors.New("invalid state")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
