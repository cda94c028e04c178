package config

import "errors"

var (
	// ErrNoTokenSignKey is returned by GetServerConfig when no token signing
	// key was provided by any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is required")
)
