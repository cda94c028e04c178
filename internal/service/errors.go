package service

import "errors"

var (
	// ErrEmptyCredentials rejects login/registration attempts with a blank
	// username or password before any request is made.
	ErrEmptyCredentials = errors.New("username and password are required")

	// ErrNotAuthenticated guards operations that need an established session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidEquipment rejects equipment payloads that fail validation.
	ErrInvalidEquipment = errors.New("invalid equipment")

	// ErrInvalidDataProvided rejects malformed registration or profile
	// payloads on the server.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials covers both an unknown username and a wrong
	// password, so login failures do not reveal which accounts exist.
	ErrWrongCredentials = errors.New("wrong username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
