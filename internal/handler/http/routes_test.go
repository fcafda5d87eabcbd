package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zentask/zentask-server/internal/service"
	"github.com/zentask/zentask-server/models"
)

// routerForTests wires a full chi router with permissive mocks so that route
// registration and middleware ordering can be exercised end to end.
func routerForTests(t *testing.T) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		registerFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{UserID: 1, Name: request.Name, Email: request.Email}, nil
		},
		loginFn: func(_ context.Context, request models.LoginRequest) (models.User, error) {
			return models.User{UserID: 1, Email: request.Email}, nil
		},
		userByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("signed.jwt.token"), nil
		},
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 1}, nil
		},
	}
	tasks := &mockTaskService{
		listTasksFn: func(_ context.Context, _ int64) ([]models.Task, error) {
			return []models.Task{}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	h.services = &service.Services{AuthService: auth, TaskService: tasks}

	return h.Init()
}

func TestRoutes_PublicEndpointsReachable(t *testing.T) {
	router := routerForTests(t)

	body := `{"name":"Alice","email":"alice@example.com","password":"secret123"}`

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_ProtectedEndpointsRequireToken(t *testing.T) {
	router := routerForTests(t)

	protected := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/tasks"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodPut, "/api/tasks/1"},
		{http.MethodDelete, "/api/tasks/1"},
	}

	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.target, strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s must require a token", route.method, route.target)
	}
}

func TestRoutes_ProtectedEndpointWithToken(t *testing.T) {
	router := routerForTests(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer signed.jwt.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, "[]", rec.Body.String())
}
