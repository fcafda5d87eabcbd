package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zentask/zentask-server/models"
)

func newTestClient(t *testing.T, handler http.Handler) APIClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	return client
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain host", "localhost:8080", "http://localhost:8080", false},
		{"with scheme", "https://api.example.com/", "https://api.example.com", false},
		{"empty", "", "", true},
		{"whitespace", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister_StoresToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var request models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "alice@example.com", request.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Token: "issued.jwt.token",
			User:  models.User{UserID: 1, Email: request.Email},
		})
	})

	client := newTestClient(t, handler)

	response, err := client.Register(context.Background(), models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "issued.jwt.token", response.Token)
	assert.Equal(t, int64(1), response.User.UserID)
	assert.Equal(t, "issued.jwt.token", client.Token())
}

func TestLogin_TokenFromAuthorizationHeader(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Authorization", "Bearer header.jwt.token")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			User: models.User{UserID: 2, Email: "bob@example.com"},
		})
	})

	client := newTestClient(t, handler)

	response, err := client.Login(context.Background(), models.LoginRequest{
		Email:    "bob@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "header.jwt.token", response.Token)
	assert.Equal(t, "header.jwt.token", client.Token())
}

func TestLogin_Conflict(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: "invalid email or password"})
	})

	client := newTestClient(t, handler)

	_, err := client.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, client.Token())
}

func TestListTasks_SendsBearerToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer saved.jwt.token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Task{{ID: 1, Title: "first", UserID: 7}})
	})

	client := newTestClient(t, handler)
	client.SetToken("saved.jwt.token")

	tasks, err := client.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "first", tasks[0].Title)
}

func TestCreateTask_Created(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/tasks", r.URL.Path)

		var request models.TaskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Task{ID: 10, Title: request.Title, UserID: 7})
	})

	client := newTestClient(t, handler)
	client.SetToken("saved.jwt.token")

	created, err := client.CreateTask(context.Background(), models.TaskRequest{
		Title:    "write report",
		Status:   models.StatusTodo,
		Priority: models.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
}

func TestUpdateTask_Forbidden(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/tasks/5", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: "task belongs to another user"})
	})

	client := newTestClient(t, handler)
	client.SetToken("saved.jwt.token")

	_, err := client.UpdateTask(context.Background(), 5, models.TaskRequest{
		Title:    "steal this task",
		Status:   models.StatusTodo,
		Priority: models.PriorityLow,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteTask_NoContent(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/tasks/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, handler)
	client.SetToken("saved.jwt.token")

	require.NoError(t, client.DeleteTask(context.Background(), 5))
}

func TestDeleteTask_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client := newTestClient(t, handler)
	client.SetToken("saved.jwt.token")

	err := client.DeleteTask(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
