package store

import (
	"context"
	"fmt"

	"github.com/medinventory/medinv/internal/config"
	"github.com/medinventory/medinv/internal/logger"
)

// Storages groups all server-side repositories into a single value passed to
// the service layer.
type Storages struct {
	// UserRepository handles account persistence.
	UserRepository UserRepository

	// EquipmentRepository handles inventory persistence.
	EquipmentRepository EquipmentRepository
}

// NewStorages initialises the server storage layer:
//  1. Opens the database connection — PostgreSQL when the DSN carries a
//     postgres:// scheme, an SQLite file otherwise.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories.
func NewStorages(cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating storages...")

	var (
		db  *DB
		err error
	)

	ctx := context.Background()
	if isPostgresDSN(cfg.DSN) {
		db, err = NewConnectPostgres(ctx, cfg, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DSN, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		EquipmentRepository: NewEquipmentRepository(db, logger),
	}, nil
}
