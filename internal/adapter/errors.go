package adapter

import "errors"

// Sentinel error classes mapped from server responses. Callers dispatch on
// them with errors.Is; the wrapped text carries the server's human-readable
// message.
var (
	// ErrValidation covers 400/422: the request was understood but rejected.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized covers 401 and 403. On authenticated requests it is
	// accompanied by a token teardown; on login it simply means bad
	// credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers 409, e.g. a duplicate username.
	ErrConflict = errors.New("conflict")

	// ErrInternalServerError covers 5xx.
	ErrInternalServerError = errors.New("internal server error")

	// ErrTransport marks failures before any HTTP response arrived: DNS,
	// connection refused, timeouts.
	ErrTransport = errors.New("transport error")
)
