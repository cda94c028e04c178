package config

import (
	"fmt"
	"time"
)

// Default fallbacks for the client runtime. The API base address is
// documented as http://localhost:8080 and is used whenever no explicit
// address is configured.
const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultSessionDBPath  = "medinv.db"
	DefaultRequestTimeout = 15 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the base address of the inventory API.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// SessionDBPath is the SQLite file holding the persisted session.
	SessionDBPath string
}

// ClientApp holds client application policy settings.
type ClientApp struct {
	// Version is the application version string.
	Version string
	// RegisterAutoLogin establishes a session right after a successful
	// registration when true. Default false: registering never changes
	// session state.
	RegisterAutoLogin bool
}

// ClientConfig is the client-specific view assembled from
// [StructuredConfig], with default fallbacks applied.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds a client-specific config view from the merged
// structured configuration and applies default fallbacks for the API base
// address, the request timeout, and the session database path.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:           cfg.App.Version,
			RegisterAutoLogin: cfg.App.RegisterAutoLogin,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionDBPath: cfg.Storage.Session.Path,
		},
	}

	if clientCfg.Adapter.BaseURL == "" {
		clientCfg.Adapter.BaseURL = DefaultBaseURL
	}
	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Storage.SessionDBPath == "" {
		clientCfg.Storage.SessionDBPath = DefaultSessionDBPath
	}

	return clientCfg, nil
}
