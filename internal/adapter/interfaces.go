package adapter

import (
	"context"

	"github.com/zentask/zentask-server/models"
)

// APIClient is a typed Go client for the task server's REST API. It is the
// adapter other programs (CLIs, integrations, smoke tests) use instead of
// hand-rolling HTTP calls.
//
// Register and Login store the issued bearer token on the client, so that
// subsequent task calls are authenticated automatically. The token can also
// be injected directly via SetToken (e.g. when resuming a saved session).
type APIClient interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)
	Me(ctx context.Context) (models.User, error)

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, request models.TaskRequest) (models.Task, error)
	UpdateTask(ctx context.Context, taskID int64, request models.TaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error

	SetToken(token string)
	Token() string
}
