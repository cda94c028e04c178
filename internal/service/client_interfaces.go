// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/medinventory/medinv/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// SessionState is the authentication snapshot published by
// [ClientSessionService]. Loading is true from construction until the first
// hydration attempt finishes, whatever its outcome; consumers that gate
// screens must wait it out rather than treat "still loading" as "logged out".
type SessionState struct {
	// Loading reports whether the initial session hydration is still running.
	Loading bool

	// Session is the current session value. Check Session.Present() rather
	// than comparing against a zero value.
	Session models.Session
}

// Authenticated reports whether a usable session is established. It is false
// while hydration is in flight.
func (s SessionState) Authenticated() bool {
	return !s.Loading && s.Session.Present()
}

// ClientSessionService owns the client's authentication state: it is the only
// component that moves the session between present and absent, keeps the
// persisted copy and the transport token in step, and publishes every change
// to its subscribers.
type ClientSessionService interface {
	// Snapshot returns the current session state.
	Snapshot() SessionState

	// Subscribe registers a listener invoked after every state change. The
	// listener is called synchronously with the fresh state; it must not call
	// back into the service.
	Subscribe(listener func(SessionState))

	// Hydrate restores the persisted session, if any, and flips Loading to
	// false exactly once. A corrupted or partial persisted session yields the
	// logged-out state, never an error. Calling Hydrate again is a no-op.
	Hydrate(ctx context.Context)

	// Login exchanges credentials for a session: on success the token is
	// installed in the transport, the session is persisted, and the new state
	// is published. On failure the previous state is untouched.
	Login(ctx context.Context, username, password string) error

	// Register creates a new account. By default it never changes session
	// state, even on success; when the auto-login policy is enabled it logs
	// the fresh account in using the same credentials.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Logout tears the session down locally: persisted copy, transport
	// token, and published state. It is idempotent and cannot fail into a
	// half-logged-out state.
	Logout(ctx context.Context) error

	// UpdateProfile sends the patch and then re-fetches the canonical
	// profile, replacing the session's user record wholesale. The token is
	// untouched.
	UpdateProfile(ctx context.Context, patch models.UserPatch) error

	// RefreshProfile re-fetches the canonical profile for the current
	// session and replaces the user record.
	RefreshProfile(ctx context.Context) error

	// DeleteAccount permanently removes the authenticated account on the
	// server and then tears down the local session.
	DeleteAccount(ctx context.Context) error

	// Invalidate drops the session unconditionally: in-memory state,
	// transport token, and persisted copy. It returns true only for the call
	// that actually performed the teardown, so concurrent invalidations
	// collapse into one logout.
	Invalidate() bool
}

// ClientEquipmentService is the client-side contract for working with the
// equipment inventory.
type ClientEquipmentService interface {
	// List returns one page of equipment matching the filter.
	List(ctx context.Context, filter models.EquipmentFilter, page, limit int) (models.EquipmentPage, error)

	// Get returns a single unit by ID.
	Get(ctx context.Context, id int64) (models.Equipment, error)

	// Create validates and registers a new unit, returning the canonical
	// record.
	Create(ctx context.Context, equipment models.Equipment) (models.Equipment, error)

	// Update validates and replaces the editable fields of a unit.
	Update(ctx context.Context, id int64, equipment models.Equipment) (models.Equipment, error)

	// ChangeStatus moves a unit to the given operational status.
	ChangeStatus(ctx context.Context, id int64, status models.EquipmentStatus) (models.Equipment, error)

	// Delete removes a unit from the inventory.
	Delete(ctx context.Context, id int64) error
}

// ClientTeamService is the client-side contract for the staff directory.
type ClientTeamService interface {
	// List returns all accounts.
	List(ctx context.Context) ([]models.User, error)

	// Get returns a single account by ID.
	Get(ctx context.Context, id int64) (models.User, error)
}
