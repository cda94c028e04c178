// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/medinventory/medinv/internal/adapter"
	"github.com/medinventory/medinv/internal/config"
	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/mock"
	"github.com/medinventory/medinv/internal/service"
	"github.com/medinventory/medinv/internal/store"
	"github.com/medinventory/medinv/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller, appCfg config.ClientApp) (service.ClientSessionService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	svc := service.NewClientSessionService(
		&store.ClientStorages{Session: mockSessions},
		mockAdapter,
		appCfg,
		logger.Nop(),
	)
	return svc, mockAdapter, mockSessions
}

func testUser() models.User {
	return models.User{ID: 1, Username: "jdoe", Name: "John Doe", Email: "jdoe@clinic.example", Role: models.RoleCommon}
}

// ── Hydrate ─────────────────────────────────────────────────────────────────

func TestSession_StartsLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl, config.ClientApp{})

	state := svc.Snapshot()
	assert.True(t, state.Loading)
	assert.False(t, state.Authenticated(), "loading state must not count as authenticated")
}

func TestHydrate_RestoresPersistedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})
	user := testUser()

	mockSessions.EXPECT().Load(gomock.Any()).Return(models.Session{Token: "jwt-token", User: &user}, nil)
	mockAdapter.EXPECT().SetToken("jwt-token")

	svc.Hydrate(context.Background())

	state := svc.Snapshot()
	assert.False(t, state.Loading)
	assert.True(t, state.Authenticated())
	assert.Equal(t, "jdoe", state.Session.User.Username)
}

func TestHydrate_AbsentSessionFinishesLoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})

	mockSessions.EXPECT().Load(gomock.Any()).Return(models.Session{}, nil)

	svc.Hydrate(context.Background())

	state := svc.Snapshot()
	assert.False(t, state.Loading)
	assert.False(t, state.Authenticated())
}

func TestHydrate_StoreErrorFinishesLoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})

	mockSessions.EXPECT().Load(gomock.Any()).Return(models.Session{}, errors.New("database is locked"))

	svc.Hydrate(context.Background())

	state := svc.Snapshot()
	assert.False(t, state.Loading, "hydration must finish even when the store fails")
	assert.False(t, state.Authenticated())
}

func TestHydrate_RunsOnlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})

	mockSessions.EXPECT().Load(gomock.Any()).Return(models.Session{}, nil).Times(1)

	svc.Hydrate(context.Background())
	svc.Hydrate(context.Background())
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success_PersistsAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})
	user := testUser()

	mockAdapter.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Username: "jdoe", Password: "pass"}).
		Return(models.LoginResponse{AccessToken: "jwt-token", User: user}, nil)
	mockSessions.EXPECT().Persist(gomock.Any(), "jwt-token", user).Return(nil)

	var notified []service.SessionState
	svc.Subscribe(func(s service.SessionState) { notified = append(notified, s) })

	err := svc.Login(context.Background(), "jdoe", "pass")

	require.NoError(t, err)
	assert.True(t, svc.Snapshot().Authenticated())
	require.Len(t, notified, 1)
	assert.True(t, notified[0].Session.Present())
}

func TestLogin_EmptyCredentialsRejectedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl, config.ClientApp{})

	err := svc.Login(context.Background(), "   ", "")
	assert.ErrorIs(t, err, service.ErrEmptyCredentials)
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl, config.ClientApp{})

	mockAdapter.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{}, adapter.ErrUnauthorized)

	before := svc.Snapshot()
	err := svc.Login(context.Background(), "jdoe", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, before, svc.Snapshot())
}

func TestLogin_PersistFailureStillEstablishesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})
	user := testUser()

	mockAdapter.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{AccessToken: "jwt-token", User: user}, nil)
	mockSessions.EXPECT().Persist(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := svc.Login(context.Background(), "jdoe", "pass")

	require.NoError(t, err, "a persistence failure must not undo a successful login")
	assert.True(t, svc.Snapshot().Authenticated())
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_DefaultPolicy_NoSessionChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl, config.ClientApp{})

	mockAdapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(models.User{ID: 2, Username: "new"}, nil)

	var notifications int
	svc.Subscribe(func(service.SessionState) { notifications++ })

	err := svc.Register(context.Background(), models.RegisterRequest{Username: "new", Password: "pass"})

	require.NoError(t, err)
	assert.False(t, svc.Snapshot().Authenticated(), "registration must not establish a session by default")
	assert.Zero(t, notifications)
}

func TestRegister_AutoLoginPolicy_LogsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{RegisterAutoLogin: true})
	user := testUser()

	mockAdapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(user, nil)
	mockAdapter.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Username: "jdoe", Password: "pass"}).
		Return(models.LoginResponse{AccessToken: "jwt-token", User: user}, nil)
	mockSessions.EXPECT().Persist(gomock.Any(), "jwt-token", user).Return(nil)

	err := svc.Register(context.Background(), models.RegisterRequest{Username: "jdoe", Password: "pass"})

	require.NoError(t, err)
	assert.True(t, svc.Snapshot().Authenticated())
}

func TestRegister_DefaultsRoleToCommon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl, config.ClientApp{})

	mockAdapter.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{Username: "new", Password: "pass", Role: models.RoleCommon}).
		Return(models.User{ID: 2}, nil)

	err := svc.Register(context.Background(), models.RegisterRequest{Username: "new", Password: "pass"})
	require.NoError(t, err)
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestLogout_TearsDownEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})
	user := testUser()

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{AccessToken: "jwt-token", User: user}, nil)
	mockSessions.EXPECT().Persist(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, svc.Login(context.Background(), "jdoe", "pass"))

	mockSessions.EXPECT().Clear(gomock.Any()).Return(nil)
	mockAdapter.EXPECT().ClearToken()

	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, svc.Snapshot().Authenticated())
}

func TestLogout_IsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})

	mockSessions.EXPECT().Clear(gomock.Any()).Return(nil).Times(2)
	mockAdapter.EXPECT().ClearToken().Times(2)

	require.NoError(t, svc.Logout(context.Background()))
	require.NoError(t, svc.Logout(context.Background()))
}

func TestLogout_ClearFailureStillLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})

	mockSessions.EXPECT().Clear(gomock.Any()).Return(errors.New("disk error"))
	mockAdapter.EXPECT().ClearToken()

	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, svc.Snapshot().Authenticated())
}

// ── Profile ─────────────────────────────────────────────────────────────────

func TestUpdateProfile_ReadAfterWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})
	user := testUser()

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{AccessToken: "jwt-token", User: user}, nil)
	mockSessions.EXPECT().Persist(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, svc.Login(context.Background(), "jdoe", "pass"))

	newName := "John Q. Doe"
	canonical := user
	canonical.Name = "John Quincy Doe" // the server normalised the value

	patched := user
	patched.Name = newName

	gomock.InOrder(
		mockAdapter.EXPECT().
			UpdateProfile(gomock.Any(), user.ID, models.UserPatch{Name: &newName}).
			Return(patched, nil),
		mockAdapter.EXPECT().
			GetProfile(gomock.Any()).
			Return(canonical, nil),
	)
	mockSessions.EXPECT().Persist(gomock.Any(), "jwt-token", canonical).Return(nil)

	err := svc.UpdateProfile(context.Background(), models.UserPatch{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "John Quincy Doe", svc.Snapshot().Session.User.Name,
		"the session record must come from the re-fetch, not the update response")
	assert.Equal(t, "jwt-token", svc.Snapshot().Session.Token, "token must survive a profile update")
}

func TestUpdateProfile_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl, config.ClientApp{})

	err := svc.UpdateProfile(context.Background(), models.UserPatch{})
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

// ── DeleteAccount ───────────────────────────────────────────────────────────

func TestDeleteAccount_RemovesAccountAndSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})
	user := testUser()

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{AccessToken: "jwt-token", User: user}, nil)
	mockSessions.EXPECT().Persist(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, svc.Login(context.Background(), "jdoe", "pass"))

	mockAdapter.EXPECT().DeleteUser(gomock.Any(), user.ID).Return(nil)
	mockAdapter.EXPECT().ClearToken()
	mockSessions.EXPECT().Clear(gomock.Any()).Return(nil)

	require.NoError(t, svc.DeleteAccount(context.Background()))
	assert.False(t, svc.Snapshot().Authenticated())
}

// ── Invalidate ──────────────────────────────────────────────────────────────

func TestInvalidate_FirstCallWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})
	user := testUser()

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{AccessToken: "jwt-token", User: user}, nil)
	mockSessions.EXPECT().Persist(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, svc.Login(context.Background(), "jdoe", "pass"))

	mockAdapter.EXPECT().ClearToken()
	mockSessions.EXPECT().Clear(gomock.Any()).Return(nil)

	assert.True(t, svc.Invalidate())
	assert.False(t, svc.Invalidate(), "second invalidation must report the session already gone")
	assert.False(t, svc.Snapshot().Authenticated())
}

func TestInvalidate_WithoutSessionIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl, config.ClientApp{})

	assert.False(t, svc.Invalidate())
}

func TestInvalidate_ConcurrentCallsCollapseToOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl, config.ClientApp{})
	user := testUser()

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{AccessToken: "jwt-token", User: user}, nil)
	mockSessions.EXPECT().Persist(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, svc.Login(context.Background(), "jdoe", "pass"))

	mockAdapter.EXPECT().ClearToken()
	mockSessions.EXPECT().Clear(gomock.Any()).Return(nil)

	const goroutines = 16
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if svc.Invalidate() {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins, "exactly one concurrent invalidation must perform the teardown")
}
