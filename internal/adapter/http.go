// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/medinventory/medinv/internal/config"
	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/utils"
	"github.com/medinventory/medinv/models"
)

type httpServerAdapter struct {
	client *resty.Client
	uuid   *utils.UUIDGenerator

	// onUnauthorized is fired by the response middleware whenever an
	// authenticated request comes back 401/403. The adapter has already
	// dropped its own token by then; everything else (clearing the session,
	// navigation) is the hook's job.
	onUnauthorized func()

	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and installs two resty middlewares:
//
//   - request: attaches an X-Request-Id trace identifier to every outbound
//     request and, when a token is held, the Authorization bearer header;
//   - response: on 401/403 to a request that carried a bearer token, clears
//     the adapter token and fires onUnauthorized.
//
// The middleware fires onUnauthorized once per rejected response; coalescing
// concurrent rejections into a single teardown is the hook owner's concern.
// onUnauthorized may be nil.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, onUnauthorized func(), logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	h := &httpServerAdapter{
		uuid:           utils.NewUUIDGenerator(),
		onUnauthorized: onUnauthorized,
		logger:         logger,
	}

	h.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		OnBeforeRequest(h.attachAuthAndTrace).
		OnAfterResponse(h.handleUnauthorized)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// attachAuthAndTrace is the request middleware: every request gets a fresh
// trace ID, authenticated requests additionally get the bearer header.
func (h *httpServerAdapter) attachAuthAndTrace(_ *resty.Client, req *resty.Request) error {
	req.SetHeader("X-Request-Id", h.uuid.Generate())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return nil
}

// handleUnauthorized is the response middleware. A 401/403 to a request that
// carried a bearer token means the credential is no longer valid anywhere, so
// the token is dropped and the hook fired. A 401 to an unauthenticated
// request (wrong login credentials) is left for the caller to handle.
func (h *httpServerAdapter) handleUnauthorized(_ *resty.Client, resp *resty.Response) error {
	code := resp.StatusCode()
	if code != http.StatusUnauthorized && code != http.StatusForbidden {
		return nil
	}
	if resp.Request.Header.Get("Authorization") == "" {
		return nil
	}

	h.logger.Warn().
		Int("status", code).
		Str("url", resp.Request.URL).
		Msg("authenticated request rejected, dropping token")

	h.ClearToken()
	if h.onUnauthorized != nil {
		h.onUnauthorized()
	}
	return nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ClearToken implements [ServerAdapter].
func (h *httpServerAdapter) ClearToken() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /auth/register and returns the created account record. The adapter
// token is deliberately left untouched.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&created).
		Post("/auth/register")
	if err != nil {
		return models.User{}, transportError("register", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login, stores the returned bearer token via SetToken, and
// returns the full response so the caller can persist token and user record
// together.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, transportError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if result.AccessToken == "" || result.User.ID == 0 {
		return models.LoginResponse{}, fmt.Errorf("login response missing token or user record")
	}

	h.SetToken(result.AccessToken)
	return result, nil
}

// GetProfile implements [ServerAdapter]. It GETs /auth/profile, the
// authoritative record of the account behind the current token.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/auth/profile")
	if err != nil {
		return models.User{}, transportError("get profile", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateProfile implements [ServerAdapter]. It PUTs the patch to
// PUT /users/{id} and returns the server's view of the updated record.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, id int64, patch models.UserPatch) (models.User, error) {
	var updated models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(patch).
		SetResult(&updated).
		Put("/users/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.User{}, transportError("update profile", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// DeleteUser implements [ServerAdapter]. It sends DELETE /users/{id}.
func (h *httpServerAdapter) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/users/" + strconv.FormatInt(id, 10))
	if err != nil {
		return transportError("delete user", err)
	}

	return mapHTTPError(resp)
}

// ListUsers implements [ServerAdapter]. It GETs /users.
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, transportError("list users", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser implements [ServerAdapter]. It GETs /users/{id}.
func (h *httpServerAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/users/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.User{}, transportError("get user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListEquipment implements [ServerAdapter]. It GETs /equipment with the
// non-zero filter fields and the pagination window as query parameters.
func (h *httpServerAdapter) ListEquipment(ctx context.Context, filter models.EquipmentFilter, page, limit int) (models.EquipmentPage, error) {
	var result models.EquipmentPage

	req := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit))

	if filter.Kind != "" {
		req.SetQueryParam("kind", filter.Kind)
	}
	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}
	if filter.Sector != "" {
		req.SetQueryParam("sector", filter.Sector)
	}
	if filter.Search != "" {
		req.SetQueryParam("search", filter.Search)
	}

	resp, err := req.Get("/equipment")
	if err != nil {
		return models.EquipmentPage{}, transportError("list equipment", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EquipmentPage{}, err
	}

	return result, nil
}

// GetEquipment implements [ServerAdapter]. It GETs /equipment/{id}.
func (h *httpServerAdapter) GetEquipment(ctx context.Context, id int64) (models.Equipment, error) {
	var equipment models.Equipment

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&equipment).
		Get("/equipment/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Equipment{}, transportError("get equipment", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Equipment{}, err
	}

	return equipment, nil
}

// CreateEquipment implements [ServerAdapter]. It POSTs the unit to
// POST /equipment and returns the canonical record.
func (h *httpServerAdapter) CreateEquipment(ctx context.Context, equipment models.Equipment) (models.Equipment, error) {
	var created models.Equipment

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(equipment).
		SetResult(&created).
		Post("/equipment")
	if err != nil {
		return models.Equipment{}, transportError("create equipment", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Equipment{}, err
	}

	return created, nil
}

// UpdateEquipment implements [ServerAdapter]. It PUTs the unit to
// PUT /equipment/{id}.
func (h *httpServerAdapter) UpdateEquipment(ctx context.Context, id int64, equipment models.Equipment) (models.Equipment, error) {
	var updated models.Equipment

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(equipment).
		SetResult(&updated).
		Put("/equipment/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Equipment{}, transportError("update equipment", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Equipment{}, err
	}

	return updated, nil
}

// UpdateEquipmentStatus implements [ServerAdapter]. It PATCHes the status to
// PATCH /equipment/{id}/status.
func (h *httpServerAdapter) UpdateEquipmentStatus(ctx context.Context, id int64, status models.EquipmentStatus) (models.Equipment, error) {
	var updated models.Equipment

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.StatusPatch{Status: status}).
		SetResult(&updated).
		Patch("/equipment/" + strconv.FormatInt(id, 10) + "/status")
	if err != nil {
		return models.Equipment{}, transportError("update equipment status", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Equipment{}, err
	}

	return updated, nil
}

// DeleteEquipment implements [ServerAdapter]. It sends DELETE
// /equipment/{id}.
func (h *httpServerAdapter) DeleteEquipment(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/equipment/" + strconv.FormatInt(id, 10))
	if err != nil {
		return transportError("delete equipment", err)
	}

	return mapHTTPError(resp)
}

func transportError(op string, err error) error {
	return fmt.Errorf("%s request: %w: %v", op, ErrTransport, err)
}
