package config

import (
	"fmt"
	"time"
)

// Default fallbacks for the server runtime.
const (
	DefaultServerAddress = ":8080"
	DefaultServerDBPath  = "medinv-server.db"
	DefaultTokenIssuer   = "medinv"
	DefaultTokenDuration = time.Hour
	DefaultServerTimeout = 30 * time.Second
)

// ServerConfig is the server-specific view assembled from
// [StructuredConfig], with default fallbacks applied and required fields
// validated.
type ServerConfig struct {
	// HTTPAddress is the listen address of the HTTP server.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// DB holds the database connection settings.
	DB DB
	// Auth holds token issuing settings.
	Auth Auth
	// Version is the application version string.
	Version string
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DB:             cfg.Storage.DB,
		Auth:           cfg.Auth,
		Version:        cfg.App.Version,
	}

	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = DefaultServerAddress
	}
	if serverCfg.RequestTimeout <= 0 {
		serverCfg.RequestTimeout = DefaultServerTimeout
	}
	if serverCfg.DB.DSN == "" {
		serverCfg.DB.DSN = DefaultServerDBPath
	}
	if serverCfg.Auth.TokenIssuer == "" {
		serverCfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if serverCfg.Auth.TokenDuration <= 0 {
		serverCfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if serverCfg.Auth.TokenSignKey == "" {
		return nil, ErrNoTokenSignKey
	}

	return serverCfg, nil
}
