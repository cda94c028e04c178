// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the MedInventory server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty with request and
// response middleware: every outbound request gets a trace identifier and,
// when present, the bearer token; every 401/403 response to an authenticated
// request clears the adapter token and fires the unauthorized hook supplied
// at construction time.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/medinventory/medinv/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// MedInventory server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// ClearToken drops the stored bearer token. Subsequent requests go out
	// unauthenticated.
	ClearToken()

	// Register creates a new account. It never changes the adapter token:
	// whether the caller logs the new account in afterwards is a policy
	// decision taken above this layer.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login exchanges credentials for a bearer token and the authoritative
	// user record. On success the token is stored via SetToken. A 401 from
	// this endpoint means bad credentials and is returned as
	// [ErrUnauthorized] without firing the unauthorized hook.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// GetProfile fetches the authoritative record of the authenticated
	// account.
	GetProfile(ctx context.Context) (models.User, error)

	// UpdateProfile applies the non-nil patch fields to the account and
	// returns the server's view of the updated record.
	UpdateProfile(ctx context.Context, id int64, patch models.UserPatch) (models.User, error)

	// DeleteUser permanently removes the account.
	DeleteUser(ctx context.Context, id int64) error

	// ListUsers returns all accounts, for the team directory.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns a single account by ID.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// ListEquipment returns one page of equipment matching the filter.
	ListEquipment(ctx context.Context, filter models.EquipmentFilter, page, limit int) (models.EquipmentPage, error)

	// GetEquipment returns a single equipment unit by ID.
	GetEquipment(ctx context.Context, id int64) (models.Equipment, error)

	// CreateEquipment registers a new equipment unit and returns the
	// canonical record with server-assigned fields.
	CreateEquipment(ctx context.Context, equipment models.Equipment) (models.Equipment, error)

	// UpdateEquipment replaces all editable fields of a unit.
	UpdateEquipment(ctx context.Context, id int64, equipment models.Equipment) (models.Equipment, error)

	// UpdateEquipmentStatus changes only the operational status of a unit.
	UpdateEquipmentStatus(ctx context.Context, id int64, status models.EquipmentStatus) (models.Equipment, error)

	// DeleteEquipment removes a unit from the inventory.
	DeleteEquipment(ctx context.Context, id int64) error
}
