// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/models"
)

// The session is persisted as exactly two named entries: the raw bearer
// token and the JSON-serialized user record.
const (
	sessionEntryToken = "token"
	sessionEntryUser  = "user"
)

const (
	createSessionTable = `
		CREATE TABLE IF NOT EXISTS session (
			name  TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`

	upsertSessionEntry = `
		INSERT INTO session (name, value) VALUES ($1, $2)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value;`

	getSessionEntry = `
		SELECT value FROM session WHERE name = $1;`

	clearSession = `
		DELETE FROM session;`
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs the SQLite-backed [SessionRepository] and
// bootstraps its schema.
func NewSessionRepository(db *DB, logger *logger.Logger) (SessionRepository, error) {
	if _, err := db.Exec(createSessionTable); err != nil {
		return nil, fmt.Errorf("create session table: %w", err)
	}

	return &sessionRepository{
		DB:     db,
		logger: logger,
	}, nil
}

func (s *sessionRepository) Persist(ctx context.Context, token string, user models.User) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user record: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Persist").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, upsertSessionEntry, sessionEntryToken, token); err != nil {
		log.Err(err).Str("func", "sessionRepository.Persist").Msg("failed to persist token entry")
		return fmt.Errorf("persist token: %w", err)
	}
	if _, err = tx.ExecContext(ctx, upsertSessionEntry, sessionEntryUser, string(payload)); err != nil {
		log.Err(err).Str("func", "sessionRepository.Persist").Msg("failed to persist user entry")
		return fmt.Errorf("persist user: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sessionRepository.Persist").Msg("failed to commit session")
		return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}

	return nil
}

// Load reads both session entries and reassembles the session. Any shape
// problem — a missing entry, an empty token, unparsable user JSON — yields
// the absent session without an error, so a corrupted store never blocks
// startup.
func (s *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := s.loadEntry(ctx, sessionEntryToken)
	if err != nil {
		return models.Session{}, err
	}
	rawUser, err := s.loadEntry(ctx, sessionEntryUser)
	if err != nil {
		return models.Session{}, err
	}

	if token == "" || rawUser == "" {
		return models.Session{}, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		log.Warn().Err(err).Str("func", "sessionRepository.Load").Msg("persisted user record is malformed, treating session as absent")
		return models.Session{}, nil
	}

	session := models.Session{Token: token, User: &user}
	if !session.Present() {
		return models.Session{}, nil
	}

	return session, nil
}

func (s *sessionRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, clearSession); err != nil {
		log.Err(err).Str("func", "sessionRepository.Clear").Msg("failed to clear session")
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (s *sessionRepository) loadEntry(ctx context.Context, name string) (string, error) {
	var value string

	err := s.DB.QueryRowContext(ctx, getSessionEntry, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}
