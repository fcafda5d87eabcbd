// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zentask/zentask-server/internal/logger"
	"github.com/zentask/zentask-server/internal/service"
	"github.com/zentask/zentask-server/internal/store"
	"github.com/zentask/zentask-server/internal/utils"
	"github.com/zentask/zentask-server/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	userByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) UserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.userByIDFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// withPrincipal injects an authenticated user ID into the request context the
// same way the auth middleware does.
func withPrincipal(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}

var validRegister = models.RegisterRequest{
	Name:     "Alice",
	Email:    "alice@example.com",
	Password: "secret123",
}

var validLogin = models.LoginRequest{
	Email:    "alice@example.com",
	Password: "secret123",
}

// TestRegister_Success verifies that a valid registration request results in
// 200 OK with the issued token and the created user in the body.
func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{UserID: 1, Name: request.Name, Email: request.Email, Role: models.RoleUser}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, signedToken, response.Token)
	assert.Equal(t, int64(1), response.User.UserID)
	assert.NotContains(t, rec.Body.String(), "password")
}

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestRegister_InvalidDataProvided verifies that service.ErrInvalidDataProvided
// maps to 400 Bad Request.
func TestRegister_InvalidDataProvided(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid data provided")
}

// TestRegister_EmailAlreadyRegistered verifies that
// store.ErrEmailAlreadyRegistered maps to 409 Conflict.
func TestRegister_EmailAlreadyRegistered(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyRegistered
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already registered")
}

// TestRegister_UnexpectedError verifies that an unknown error from Register
// maps to 500 Internal Server Error with a generic body.
func TestRegister_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, errors.New("db connection lost")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db connection lost")
}

// TestLogin_Success verifies that valid credentials result in 200 OK with the
// issued token and user payload.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.User, error) {
			return models.User{UserID: 7, Email: request.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, signedToken, response.Token)
	assert.Equal(t, int64(7), response.User.UserID)
}

// TestLogin_InvalidCredentials verifies that wrong credentials map to
// 401 Unauthorized.
func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

// TestLogin_TokenCreationFails verifies that a token creation failure maps to
// 500 Internal Server Error.
func TestLogin_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{UserID: 7}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestMe_Success verifies that the current-user endpoint returns the account
// of the authenticated principal.
func TestMe_Success(t *testing.T) {
	auth := &mockAuthService{
		userByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Email: "alice@example.com"}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := withPrincipal(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), 7)
	rec := httptest.NewRecorder()

	h.me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(7), user.UserID)
}

// TestMe_NoPrincipal verifies that a request that slipped past the auth
// middleware without a user ID is rejected with 401.
func TestMe_NoPrincipal(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	h.me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestMe_UserGone verifies that a valid token for a deleted account maps to
// 404 Not Found.
func TestMe_UserGone(t *testing.T) {
	auth := &mockAuthService{
		userByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := withPrincipal(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), 7)
	rec := httptest.NewRecorder()

	h.me(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
