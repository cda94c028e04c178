package store

import (
	"context"
	"fmt"

	"github.com/medinventory/medinv/internal/config"
	"github.com/medinventory/medinv/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer. Currently it holds only the
// session repository; additional repositories can be added here as the
// feature set grows.
type ClientStorages struct {
	// Session is the SQLite-backed durable store of the current session.
	Session SessionRepository
}

// NewClientStorages initialises the client storage layer: it opens the
// SQLite session database (creating the file if needed) and constructs the
// session repository on top of it.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.SessionDBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	sessionRepo, err := NewSessionRepository(db, logger)
	if err != nil {
		return nil, fmt.Errorf("session repository init failed: %w", err)
	}

	return &ClientStorages{
		Session: sessionRepo,
	}, nil
}
