package tui

import (
	"errors"

	"github.com/medinventory/medinv/internal/adapter"
	"github.com/medinventory/medinv/internal/service"
)

// humanizeError rewrites adapter and service errors into messages fit for
// the screen. Unrecognised errors pass through unchanged so nothing is
// silently swallowed.
func humanizeError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrTransport):
		return "Server is unreachable, check the connection and try again"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Wrong username or password"
	case errors.Is(err, adapter.ErrConflict):
		return "This username is already taken"
	case errors.Is(err, adapter.ErrNotFound):
		return "The record no longer exists"
	case errors.Is(err, adapter.ErrInternalServerError):
		return "Server error, try again later"
	case errors.Is(err, service.ErrEmptyCredentials):
		return "Username and password are required"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Sign in to continue"
	default:
		return err.Error()
	}
}
