package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, update, and removal against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createUser, user.Username, user.Name, user.Email, user.Role, passwordHash)

	var created models.User
	if err := row.Scan(&created.ID, &created.Username, &created.Name, &created.Email, &created.Role, &created.CreatedAt); err != nil {
		if r.isUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, string, error) {
	log := logger.FromContext(ctx)

	var found models.User
	var passwordHash string

	row := r.DB.QueryRowContext(ctx, findUserByUsername, username)
	if err := row.Scan(&found.ID, &found.Username, &found.Name, &found.Email, &found.Role, &found.CreatedAt, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", ErrNoUserWasFound
		}
		log.Err(err).Str("func", "userRepository.FindUserByUsername").Msg("failed to query user by username")
		return models.User{}, "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, passwordHash, nil
}

func (r *userRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.DB.QueryRowContext(ctx, getUserByID, id)
	if err := row.Scan(&found.ID, &found.Username, &found.Name, &found.Email, &found.Role, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "userRepository.GetUser").Int64("user_id", id).Msg("failed to query user by id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllUsers)
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to query users")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return users, nil
}

// UpdateUser builds the SET clause dynamically from the non-nil patch
// fields; an empty patch degenerates into a touch of the username column so
// the RETURNING clause still yields the canonical record.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, patch models.UserPatch, passwordHash *string) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := squirrel.Update("users").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, username, name, email, role, created_at")

	assigned := false
	if patch.Username != nil {
		builder = builder.Set("username", *patch.Username)
		assigned = true
	}
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
		assigned = true
	}
	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
		assigned = true
	}
	if passwordHash != nil {
		builder = builder.Set("password_hash", *passwordHash)
		assigned = true
	}
	if !assigned {
		return r.GetUser(ctx, id)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Msg("failed to build update query")
		return models.User{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&updated.ID, &updated.Username, &updated.Name, &updated.Email, &updated.Role, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		if r.isUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "userRepository.UpdateUser").Int64("user_id", id).Msg("failed to update user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "userRepository.DeleteUser").Int64("user_id", id).Msg("failed to delete user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) isUniqueViolation(err error) bool {
	if r.dialect == "postgres" {
		return postgresError(err) == pgerrcode.UniqueViolation
	}
	return sqliteIsUniqueViolation(err)
}
