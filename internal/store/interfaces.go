// SPDX-License-Identifier: Apache-2.0

// Package store contains all persistence code of the application: the
// client-side session repository and the server-side user and equipment
// repositories. Connections are wrapped in [DB], which carries the dialect
// so repositories can map driver-specific errors (e.g. unique violations)
// to the sentinel values defined in errors.go.
package store

import (
	"context"

	"github.com/medinventory/medinv/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository handles account persistence for the server.
type UserRepository interface {
	// CreateUser persists a new account with the given password hash and
	// returns the canonical record with server-assigned fields (ID,
	// CreatedAt). Returns [ErrUsernameAlreadyExists] on a duplicate
	// username.
	CreateUser(ctx context.Context, user models.User, passwordHash string) (models.User, error)

	// FindUserByUsername returns the account with the given username along
	// with its password hash, or [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, string, error)

	// GetUser returns the account with the given ID, or [ErrNoUserWasFound].
	GetUser(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns all accounts ordered by name.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies the non-nil patch fields (and the new password
	// hash, when given) to the account and returns the updated canonical
	// record. Returns [ErrUsernameAlreadyExists] when the patched username
	// is taken and [ErrNoUserWasFound] when the account does not exist.
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch, passwordHash *string) (models.User, error)

	// DeleteUser removes the account, or returns [ErrNoUserWasFound].
	DeleteUser(ctx context.Context, id int64) error
}

// EquipmentRepository handles inventory persistence for the server.
type EquipmentRepository interface {
	// CreateEquipment persists a new unit and returns the canonical record.
	CreateEquipment(ctx context.Context, equipment models.Equipment) (models.Equipment, error)

	// GetEquipment returns the unit with the given ID, or
	// [ErrEquipmentNotFound].
	GetEquipment(ctx context.Context, id int64) (models.Equipment, error)

	// ListEquipment returns one page of units matching the filter, together
	// with the total match count.
	ListEquipment(ctx context.Context, filter models.EquipmentFilter, page, limit int) (models.EquipmentPage, error)

	// UpdateEquipment replaces all editable fields of the unit and returns
	// the updated canonical record, or [ErrEquipmentNotFound].
	UpdateEquipment(ctx context.Context, id int64, equipment models.Equipment) (models.Equipment, error)

	// UpdateEquipmentStatus changes only the operational status, or returns
	// [ErrEquipmentNotFound].
	UpdateEquipmentStatus(ctx context.Context, id int64, status models.EquipmentStatus) (models.Equipment, error)

	// DeleteEquipment removes the unit, or returns [ErrEquipmentNotFound].
	DeleteEquipment(ctx context.Context, id int64) error
}
