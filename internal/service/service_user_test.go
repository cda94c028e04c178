package service_test

import (
	"context"
	"testing"

	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/mock"
	"github.com/medinventory/medinv/internal/service"
	"github.com/medinventory/medinv/internal/utils"
	"github.com/medinventory/medinv/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestUserUpdate_NormalisesPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(mockUsers, logger.Nop())

	mockUsers.EXPECT().
		UpdateUser(gomock.Any(), int64(1), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, id int64, patch models.UserPatch, _ *string) (models.User, error) {
			require.NotNil(t, patch.Username)
			assert.Equal(t, "jdoe", *patch.Username)
			require.NotNil(t, patch.Name)
			assert.Equal(t, "John Doe", *patch.Name)
			return models.User{ID: id, Username: *patch.Username, Name: *patch.Name}, nil
		})

	updated, err := svc.UpdateUser(context.Background(), 1, models.UserPatch{
		Username: strPtr(" JDoe "),
		Name:     strPtr("  John Doe  "),
	})

	require.NoError(t, err)
	assert.Equal(t, "jdoe", updated.Username)
}

func TestUserUpdate_HashesNewPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(mockUsers, logger.Nop())

	mockUsers.EXPECT().
		UpdateUser(gomock.Any(), int64(1), gomock.Any(), gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ context.Context, id int64, _ models.UserPatch, passwordHash *string) (models.User, error) {
			require.NotNil(t, passwordHash)
			assert.True(t, utils.CheckPassword("newsecret", *passwordHash))
			return models.User{ID: id}, nil
		})

	_, err := svc.UpdateUser(context.Background(), 1, models.UserPatch{Password: strPtr("newsecret")})
	require.NoError(t, err)
}

func TestUserUpdate_RejectsBadPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(mockUsers, logger.Nop())

	tests := []struct {
		name  string
		patch models.UserPatch
	}{
		{"blank username", models.UserPatch{Username: strPtr("   ")}},
		{"short password", models.UserPatch{Password: strPtr("abc")}},
		{"malformed email", models.UserPatch{Email: strPtr("not-an-email")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateUser(context.Background(), 1, tt.patch)
			assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
		})
	}
}

func TestUserService_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(mockUsers, logger.Nop())

	mockUsers.EXPECT().GetUser(gomock.Any(), int64(3)).Return(models.User{ID: 3}, nil)
	mockUsers.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{ID: 1}, {ID: 3}}, nil)
	mockUsers.EXPECT().DeleteUser(gomock.Any(), int64(3)).Return(nil)

	got, err := svc.GetUser(context.Background(), 3)
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.ID)

	all, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, svc.DeleteUser(context.Background(), 3))
}
