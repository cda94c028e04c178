package service

import (
	"context"

	"github.com/medinventory/medinv/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle on the server.
type AuthService interface {
	// Register validates the registration payload, hashes the password, and
	// persists the new account. Returns the canonical record or
	// [store.ErrUsernameAlreadyExists] on a duplicate username.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and returns the account record.
	// A missing account and a wrong password both map to [ErrWrongCredentials]
	// so callers cannot probe which usernames exist.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed JWT for the given account.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string (signature, expiry, issuer) and
	// returns the decoded token, or [ErrTokenIsExpiredOrInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes the staff directory and profile management.
type UserService interface {
	// GetUser returns a single account by ID.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns all accounts.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies the non-nil patch fields to the account, hashing the
	// password when one is given, and returns the updated canonical record.
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error)

	// DeleteUser permanently removes the account.
	DeleteUser(ctx context.Context, id int64) error
}

// EquipmentService owns the inventory business rules on the server.
type EquipmentService interface {
	// Create validates and persists a new unit.
	Create(ctx context.Context, equipment models.Equipment) (models.Equipment, error)

	// Get returns a single unit by ID.
	Get(ctx context.Context, id int64) (models.Equipment, error)

	// List returns one page of units matching the filter.
	List(ctx context.Context, filter models.EquipmentFilter, page, limit int) (models.EquipmentPage, error)

	// Update validates and replaces the editable fields of a unit.
	Update(ctx context.Context, id int64, equipment models.Equipment) (models.Equipment, error)

	// ChangeStatus moves a unit to the given operational status.
	ChangeStatus(ctx context.Context, id int64, status models.EquipmentStatus) (models.Equipment, error)

	// Delete removes a unit from the inventory.
	Delete(ctx context.Context, id int64) error
}
