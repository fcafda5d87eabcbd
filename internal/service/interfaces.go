package service

import (
	"context"

	"github.com/zentask/zentask-server/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	UserByID(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService handles task CRUD on behalf of an authenticated principal.
// Every method takes the acting user's ID explicitly; no method trusts
// identity data arriving inside request payloads.
type TaskService interface {
	ListTasks(ctx context.Context, principalID int64) ([]models.Task, error)
	CreateTask(ctx context.Context, principalID int64, request models.TaskRequest) (models.Task, error)
	UpdateTask(ctx context.Context, principalID, taskID int64, request models.TaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, principalID, taskID int64) error
}
