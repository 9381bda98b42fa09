// Package apperrors defines the sentinel errors the service layer returns.
// Controllers translate these into HTTP status codes; anything else becomes a
// generic 500 with the detail logged server-side only.
package apperrors

import "errors"

var (
	ErrInvalidID          = errors.New("invalid id")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role value")
	ErrSelfDemotion       = errors.New("cannot remove own admin role")
	ErrLastAdmin          = errors.New("cannot demote the last remaining admin")
	ErrNoFile             = errors.New("no file uploaded")
)
