package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/zentask/zentask-server/internal/utils"
	"github.com/zentask/zentask-server/models"
)

// HTTPClientConfig carries the settings for constructing an [APIClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates cfg.BaseURL and configures the underlying
// resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(cfg HTTPClientConfig) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}, nil
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

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient]. It returns the bearer token currently held by
// the client, or an empty string if none has been set.
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [APIClient]. It POSTs the registration payload to
// POST /api/auth/register, stores the issued token via SetToken, and returns
// the full authentication response.
func (h *httpAPIClient) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	return h.authCall(ctx, "/api/auth/register", request)
}

// Login implements [APIClient]. It POSTs the credentials to
// POST /api/auth/login, stores the issued token via SetToken, and returns the
// full authentication response.
func (h *httpAPIClient) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	return h.authCall(ctx, "/api/auth/login", request)
}

func (h *httpAPIClient) authCall(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var authResponse models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &authResponse); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode auth response: %w", err)
	}

	// Some deployments issue the token only via the Authorization response
	// header; fall back to it when the body carries no token.
	if authResponse.Token == "" {
		if headerToken, headerErr := utils.ParseBearerToken(resp.Header().Get("Authorization")); headerErr == nil {
			authResponse.Token = headerToken
		}
	}

	h.SetToken(authResponse.Token)
	return authResponse, nil
}

// Me implements [APIClient]. It GETs the account of the authenticated
// principal from GET /api/auth/me.
func (h *httpAPIClient) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}

	return user, nil
}

// ListTasks implements [APIClient]. It GETs the principal's tasks from
// GET /api/tasks.
func (h *httpAPIClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	resp, err := h.authedRequest(ctx).Get("/api/tasks")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err = json.Unmarshal(resp.Body(), &tasks); err != nil {
		return nil, fmt.Errorf("decode task list response: %w", err)
	}

	return tasks, nil
}

// CreateTask implements [APIClient]. It POSTs the task payload to
// POST /api/tasks and returns the created task.
func (h *httpAPIClient) CreateTask(ctx context.Context, request models.TaskRequest) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/tasks")
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var task models.Task
	if err = json.Unmarshal(resp.Body(), &task); err != nil {
		return models.Task{}, fmt.Errorf("decode create task response: %w", err)
	}

	return task, nil
}

// UpdateTask implements [APIClient]. It PUTs the task payload to
// PUT /api/tasks/{id} and returns the updated task.
func (h *httpAPIClient) UpdateTask(ctx context.Context, taskID int64, request models.TaskRequest) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put("/api/tasks/" + strconv.FormatInt(taskID, 10))
	if err != nil {
		return models.Task{}, fmt.Errorf("update task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var task models.Task
	if err = json.Unmarshal(resp.Body(), &task); err != nil {
		return models.Task{}, fmt.Errorf("decode update task response: %w", err)
	}

	return task, nil
}

// DeleteTask implements [APIClient]. It DELETEs /api/tasks/{id}.
func (h *httpAPIClient) DeleteTask(ctx context.Context, taskID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/tasks/" + strconv.FormatInt(taskID, 10))
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
