// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/medinventory/medinv/internal/adapter"
	"github.com/medinventory/medinv/internal/config"
	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/store"
	"github.com/medinventory/medinv/models"
)

// clientSessionService is the single owner of client authentication state.
//
// Invariant: the in-memory state, the adapter token, and the persisted
// session move together. Every mutation happens under mu and finishes with a
// publish to the subscribers, so observers never see the token and the user
// record disagree.
type clientSessionService struct {
	sessions          store.SessionRepository
	adapter           adapter.ServerAdapter
	registerAutoLogin bool
	logger            *logger.Logger

	hydrateOnce sync.Once

	mu        sync.RWMutex
	state     SessionState
	listeners []func(SessionState)
}

// NewClientSessionService constructs the session controller in the loading
// state. No session is visible until Hydrate has run.
func NewClientSessionService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, appCfg config.ClientApp, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		sessions:          localStore.Session,
		adapter:           serverAdapter,
		registerAutoLogin: appCfg.RegisterAutoLogin,
		logger:            logger,
		state:             SessionState{Loading: true},
	}
}

func (s *clientSessionService) Snapshot() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *clientSessionService) Subscribe(listener func(SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Hydrate restores the persisted session. The loading flag drops exactly
// once, on the first call, regardless of what the store returns: a read
// error or a malformed record mean starting logged out, not crashing.
func (s *clientSessionService) Hydrate(ctx context.Context) {
	s.hydrateOnce.Do(func() {
		session, err := s.sessions.Load(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("session hydration failed, starting logged out")
			session = models.Session{}
		}

		if session.Present() {
			s.adapter.SetToken(session.Token)
			s.logger.Info().Str("username", session.User.Username).Msg("session restored")
		}

		s.setState(SessionState{Loading: false, Session: session})
	})
}

func (s *clientSessionService) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}

	result, err := s.adapter.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	user := result.User
	if err := s.sessions.Persist(ctx, result.AccessToken, user); err != nil {
		// The server accepted the credentials; losing only persistence keeps
		// this run usable and the next start logged out.
		s.logger.Warn().Err(err).Msg("failed to persist session, it will not survive a restart")
	}

	s.setState(SessionState{Session: models.Session{Token: result.AccessToken, User: &user}})
	s.logger.Info().Str("username", user.Username).Msg("logged in")
	return nil
}

func (s *clientSessionService) Register(ctx context.Context, req models.RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return ErrEmptyCredentials
	}
	if req.Role == "" {
		req.Role = models.RoleCommon
	}

	if _, err := s.adapter.Register(ctx, req); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	s.logger.Info().Str("username", req.Username).Msg("account registered")

	if !s.registerAutoLogin {
		return nil
	}
	return s.Login(ctx, req.Username, req.Password)
}

// Logout clears every trace of the session. Failures to delete the persisted
// copy are logged but do not keep the user logged in.
func (s *clientSessionService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear persisted session")
	}
	s.adapter.ClearToken()
	s.setState(SessionState{})
	s.logger.Info().Msg("logged out")
	return nil
}

func (s *clientSessionService) UpdateProfile(ctx context.Context, patch models.UserPatch) error {
	current := s.Snapshot()
	if !current.Authenticated() {
		return ErrNotAuthenticated
	}

	if _, err := s.adapter.UpdateProfile(ctx, current.Session.User.ID, patch); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	// Read-after-write: the session record is replaced with what the server
	// actually stored, never with a locally merged guess.
	return s.RefreshProfile(ctx)
}

func (s *clientSessionService) RefreshProfile(ctx context.Context) error {
	current := s.Snapshot()
	if !current.Authenticated() {
		return ErrNotAuthenticated
	}

	user, err := s.adapter.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("refresh profile: %w", err)
	}

	token := current.Session.Token
	if err := s.sessions.Persist(ctx, token, user); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist refreshed profile")
	}

	s.setState(SessionState{Session: models.Session{Token: token, User: &user}})
	return nil
}

func (s *clientSessionService) DeleteAccount(ctx context.Context) error {
	current := s.Snapshot()
	if !current.Authenticated() {
		return ErrNotAuthenticated
	}

	if err := s.adapter.DeleteUser(ctx, current.Session.User.ID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.Invalidate()
	return nil
}

// Invalidate performs the unauthorized teardown. The present→absent
// transition happens under the lock, so when several rejected requests race
// only one caller observes true and triggers the follow-up (navigation,
// message); the rest find the session already gone.
func (s *clientSessionService) Invalidate() bool {
	s.mu.Lock()
	if !s.state.Session.Present() {
		s.mu.Unlock()
		return false
	}
	s.state = SessionState{}
	listeners := s.listeners
	state := s.state
	s.mu.Unlock()

	s.adapter.ClearToken()
	if err := s.sessions.Clear(context.Background()); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear persisted session during invalidation")
	}
	s.logger.Info().Msg("session invalidated")

	for _, l := range listeners {
		l(state)
	}
	return true
}

// setState replaces the published state and notifies subscribers outside the
// write section.
func (s *clientSessionService) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}
