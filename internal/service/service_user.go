package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/store"
	"github.com/medinventory/medinv/internal/utils"
	"github.com/medinventory/medinv/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return u.userRepository.GetUser(ctx, id)
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.ListUsers(ctx)
}

// UpdateUser applies the patch to the account. The patch is normalised the
// same way registration is: usernames are lowercased, a given password is
// hashed before it reaches the repository. A nil field leaves the stored
// value untouched; an explicitly empty username or password is rejected.
func (u *userService) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	if patch.Username != nil {
		username := normalizeUsername(*patch.Username)
		if username == "" {
			return models.User{}, fmt.Errorf("%w: username cannot be empty", ErrInvalidDataProvided)
		}
		patch.Username = &username
	}
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if email != "" {
			if _, err := mail.ParseAddress(email); err != nil {
				return models.User{}, fmt.Errorf("%w: malformed email address", ErrInvalidDataProvided)
			}
		}
		patch.Email = &email
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	var passwordHash *string
	if patch.Password != nil {
		if len(*patch.Password) < minPasswordLength {
			return models.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
		}
		hash, err := utils.HashPassword(*patch.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		passwordHash = &hash
	}

	updated, err := u.userRepository.UpdateUser(ctx, id, patch, passwordHash)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

func (u *userService) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := u.userRepository.DeleteUser(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	log.Info().Int64("id", id).Msg("account deleted")
	return nil
}
