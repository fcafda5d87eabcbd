package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/zentask/zentask-server/models"
)

// UserRepository is the credential store. It persists user accounts and
// resolves them by their natural login key (email) or by primary key.
type UserRepository interface {
	// CreateUser inserts a new account and returns the persisted form with
	// server-assigned fields (UserID, CreatedAt). A duplicate email fails
	// with [ErrEmailAlreadyRegistered].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail resolves an account by email.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID resolves an account by primary key.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TaskRepository is the task store. Every record is owned by exactly one
// user; mutation queries are additionally scoped by owner so that a service
// level ownership check can never be undone by a stray id.
type TaskRepository interface {
	// CreateTask inserts a new task and returns the persisted form with
	// server-assigned fields (ID, CreatedAt, UpdatedAt).
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// FindTaskByID resolves a task by primary key regardless of owner.
	// Returns [ErrTaskNotFound] when no task matches. Callers are
	// responsible for the ownership check on the returned record.
	FindTaskByID(ctx context.Context, taskID int64) (models.Task, error)

	// FindTasksByOwner returns every task owned by ownerID, ordered by id
	// ascending. An owner without tasks yields an empty slice, not an error.
	FindTasksByOwner(ctx context.Context, ownerID int64) ([]models.Task, error)

	// UpdateTask rewrites the mutable fields (title, description, status,
	// priority, due date) of the task identified by task.ID and task.UserID
	// and returns the persisted form. Returns [ErrTaskNotFound] when no row
	// matches both id and owner.
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)

	// DeleteTask permanently removes the task identified by taskID and
	// ownerID. Returns [ErrTaskNotFound] when no row matches both.
	DeleteTask(ctx context.Context, taskID, ownerID int64) error
}
