// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/medinventory/medinv/internal/config"
	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string, onUnauthorized func()) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, onUnauthorized, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: "   "}, nil, logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPServerAdapter_SchemelessAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: "localhost:8080"}, nil, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", a.(*httpServerAdapter).client.BaseURL)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Empty(t, r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(models.LoginResponse{
			AccessToken: "jwt-token",
			User:        models.User{ID: 1, Username: "jdoe", Role: models.RoleCommon},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	got, err := a.Login(context.Background(), models.LoginRequest{Username: "jdoe", Password: "pass"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", a.Token())
	assert.Equal(t, int64(1), got.User.ID)
}

func TestLogin_BadCredentials_NoTeardown(t *testing.T) {
	var hookCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, func() { hookCalls.Add(1) })
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "jdoe", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.Zero(t, hookCalls.Load(), "a 401 from login must not fire the unauthorized hook")
}

func TestLogin_IncompleteResponseRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.LoginResponse{AccessToken: "jwt-token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "jdoe", Password: "pass"})

	require.Error(t, err)
	assert.Empty(t, a.Token(), "token must not be stored from an incomplete login response")
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_DoesNotTouchToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.User{ID: 2, Username: "new"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	a.SetToken("existing-token")

	created, err := a.Register(context.Background(), models.RegisterRequest{Username: "new", Password: "pass"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
	assert.Equal(t, "existing-token", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"username already exists"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.Register(context.Background(), models.RegisterRequest{Username: "taken"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegister_ValidationMessagesJoined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":["username is required","password too short"]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.Register(context.Background(), models.RegisterRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "username is required; password too short")
}

// ── Unauthorized teardown ───────────────────────────────────────────────────

func TestAuthenticatedRequest_401_ClearsTokenAndFiresHook(t *testing.T) {
	var hookCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stale-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, func() { hookCalls.Add(1) })
	a.SetToken("stale-token")

	_, err := a.GetProfile(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token(), "token must be dropped on 401")
	assert.Equal(t, int32(1), hookCalls.Load())
}

func TestAuthenticatedRequest_403_TreatedLike401(t *testing.T) {
	var hookCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, func() { hookCalls.Add(1) })
	a.SetToken("stale-token")

	err := a.DeleteEquipment(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
	assert.Equal(t, int32(1), hookCalls.Load())
}

func TestUnauthenticatedRequest_401_NoHook(t *testing.T) {
	var hookCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, func() { hookCalls.Add(1) })

	_, err := a.GetProfile(context.Background())

	require.Error(t, err)
	assert.Zero(t, hookCalls.Load())
}

// ── Equipment ───────────────────────────────────────────────────────────────

func TestListEquipment_FilterAndPaginationQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/equipment", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "25", q.Get("limit"))
		assert.Equal(t, "ventilator", q.Get("kind"))
		assert.Equal(t, "MAINTENANCE", q.Get("status"))
		assert.Equal(t, "ICU", q.Get("sector"))
		assert.Equal(t, "dräger", q.Get("search"))

		_ = json.NewEncoder(w).Encode(models.EquipmentPage{
			Items: []models.Equipment{{ID: 9, Name: "Ventilator A"}},
			Total: 1, Page: 2, Limit: 25,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	a.SetToken("jwt-token")

	filter := models.EquipmentFilter{
		Kind:   "ventilator",
		Status: models.EquipmentMaintenance,
		Sector: "ICU",
		Search: "dräger",
	}
	page, err := a.ListEquipment(context.Background(), filter, 2, 25)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(9), page.Items[0].ID)
}

func TestUpdateEquipmentStatus_SendsPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/equipment/7/status", r.URL.Path)

		var patch models.StatusPatch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, models.EquipmentRetired, patch.Status)

		_ = json.NewEncoder(w).Encode(models.Equipment{ID: 7, Status: models.EquipmentRetired})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	a.SetToken("jwt-token")

	updated, err := a.UpdateEquipmentStatus(context.Background(), 7, models.EquipmentRetired)

	require.NoError(t, err)
	assert.Equal(t, models.EquipmentRetired, updated.Status)
}

func TestGetEquipment_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"equipment not found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	a.SetToken("jwt-token")

	_, err := a.GetEquipment(context.Background(), 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Transport failures ──────────────────────────────────────────────────────

func TestTransportFailure_MappedToErrTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.ListUsers(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestServerError_MappedToErrInternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	a.SetToken("jwt-token")

	_, err := a.ListUsers(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}
