package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medinventory/medinv/internal/config"
	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/mock"
	"github.com/medinventory/medinv/internal/service"
	"github.com/medinventory/medinv/internal/store"
	"github.com/medinventory/medinv/internal/utils"
	"github.com/medinventory/medinv/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAuthCfg = config.Auth{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "medinv-test",
	TokenDuration: time.Hour,
}

func TestAuthRegister_HashesPasswordAndNormalisesUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(mockUsers, testAuthCfg, logger.Nop())

	var storedHash string
	mockUsers.EXPECT().
		CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User, passwordHash string) (models.User, error) {
			assert.Equal(t, "jdoe", user.Username, "username must be trimmed and lowercased")
			assert.Equal(t, models.RoleCommon, user.Role, "blank role must default to COMMON")
			storedHash = passwordHash
			user.ID = 1
			return user, nil
		})

	created, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "  JDoe ",
		Name:     "John Doe",
		Email:    "jdoe@clinic.example",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.EqualValues(t, 1, created.ID)
	assert.NotEqual(t, "secret1", storedHash, "plaintext password must never reach the repository")
	assert.True(t, utils.CheckPassword("secret1", storedHash))
}

func TestAuthRegister_RejectsInvalidPayloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(mockUsers, testAuthCfg, logger.Nop())

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"empty username", models.RegisterRequest{Password: "secret1"}},
		{"blank username", models.RegisterRequest{Username: "   ", Password: "secret1"}},
		{"empty password", models.RegisterRequest{Username: "jdoe"}},
		{"short password", models.RegisterRequest{Username: "jdoe", Password: "abc"}},
		{"malformed email", models.RegisterRequest{Username: "jdoe", Password: "secret1", Email: "not-an-email"}},
		{"unknown role", models.RegisterRequest{Username: "jdoe", Password: "secret1", Role: "SUPERVISOR"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
		})
	}
}

func TestAuthRegister_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(mockUsers, testAuthCfg, logger.Nop())

	mockUsers.EXPECT().
		CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Username: "jdoe", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(mockUsers, testAuthCfg, logger.Nop())

	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)

	mockUsers.EXPECT().
		FindUserByUsername(gomock.Any(), "jdoe").
		Return(models.User{ID: 1, Username: "jdoe"}, hash, nil)

	user, err := svc.Login(context.Background(), models.LoginRequest{Username: " JDoe ", Password: "secret1"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, user.ID)
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(mockUsers, testAuthCfg, logger.Nop())

	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)

	mockUsers.EXPECT().
		FindUserByUsername(gomock.Any(), "jdoe").
		Return(models.User{ID: 1, Username: "jdoe"}, hash, nil)

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "jdoe", Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrWrongCredentials)
}

func TestAuthLogin_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(mockUsers, testAuthCfg, logger.Nop())

	mockUsers.EXPECT().
		FindUserByUsername(gomock.Any(), "ghost").
		Return(models.User{}, "", store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "secret1"})
	assert.ErrorIs(t, err, service.ErrWrongCredentials,
		"an unknown username must be indistinguishable from a wrong password")
}

func TestAuthLogin_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(mockUsers, testAuthCfg, logger.Nop())

	_, err := svc.Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestAuthTokens_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(mockUsers, testAuthCfg, logger.Nop())

	token, err := svc.CreateToken(context.Background(), models.User{ID: 42, Username: "jdoe"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestAuthParseToken_RejectsForeignToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(mockUsers, testAuthCfg, logger.Nop())

	foreign, err := utils.GenerateJWTToken("someone-else", 42, time.Hour, testAuthCfg.TokenSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, service.ErrTokenIsExpiredOrInvalid)

	_, err = svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, service.ErrTokenIsExpiredOrInvalid)
}

func TestAuthLogin_RepositoryFailureIsNotWrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(mockUsers, testAuthCfg, logger.Nop())

	mockUsers.EXPECT().
		FindUserByUsername(gomock.Any(), "jdoe").
		Return(models.User{}, "", errors.New("connection refused"))

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "jdoe", Password: "secret1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrWrongCredentials)
}
