// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/medinventory/medinv/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// SessionRepository is the durable store of the client session. It is the
// single owner of the persisted credential and user record: the session
// controller and the transport's unauthorized handler are the only callers,
// no UI component touches the durable copy directly.
type SessionRepository interface {
	// Persist writes the token and the serialized user record, replacing any
	// previously stored session.
	Persist(ctx context.Context, token string, user models.User) error

	// Load returns the persisted session. Malformed or partially persisted
	// data is not an error: it is normalized to the absent session. An error
	// is returned only for database-level failures.
	Load(ctx context.Context) (models.Session, error)

	// Clear removes the persisted session. Clearing an absent session is a
	// no-op.
	Clear(ctx context.Context) error
}
