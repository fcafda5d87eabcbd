package service

import (
	"context"
	"fmt"

	"github.com/zentask/zentask-server/internal/logger"
	"github.com/zentask/zentask-server/internal/store"
	"github.com/zentask/zentask-server/models"
)

// taskService is the concrete implementation of TaskService.
//
// Ownership is enforced here: mutations first load the task by ID and compare
// its owner against the acting principal, so a request touching another
// user's task fails with ErrTaskAccessDenied rather than pretending the task
// does not exist. The repository WHERE clauses are additionally scoped by
// owner as a second line of defence.
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService wired to the given TaskRepository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// ListTasks returns every task owned by the principal, ordered by id
// ascending. A principal with no tasks gets an empty slice, not an error.
func (s *taskService) ListTasks(ctx context.Context, principalID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	tasks, err := s.taskRepository.FindTasksByOwner(ctx, principalID)
	if err != nil {
		log.Err(err).Int64("user_id", principalID).Msg("task listing failed")
		return nil, fmt.Errorf("task listing failed: %w", err)
	}

	return tasks, nil
}

// CreateTask validates the request and persists a new task owned by the
// principal. The owner is always the acting principal; the request cannot
// assign a task to anyone else.
//
// Returns ErrInvalidDataProvided if the title is empty or the status or
// priority value is not one of the known enum members.
func (s *taskService) CreateTask(ctx context.Context, principalID int64, request models.TaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if err := validateTaskRequest(request); err != nil {
		log.Error().Int64("user_id", principalID).Msg("invalid task data provided")
		return models.Task{}, err
	}

	task := models.Task{
		Title:       request.Title,
		Description: request.Description,
		Status:      request.Status,
		Priority:    request.Priority,
		DueDate:     request.DueDate,
		UserID:      principalID,
	}

	created, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Int64("user_id", principalID).Msg("task creation failed")
		return models.Task{}, fmt.Errorf("task creation failed: %w", err)
	}

	return created, nil
}

// UpdateTask replaces the mutable fields of an existing task.
//
// Returns:
//   - ErrInvalidDataProvided if the request fails validation.
//   - store.ErrTaskNotFound if no task with taskID exists.
//   - ErrTaskAccessDenied if the task is owned by someone else.
func (s *taskService) UpdateTask(ctx context.Context, principalID, taskID int64, request models.TaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if err := validateTaskRequest(request); err != nil {
		log.Error().Int64("user_id", principalID).Int64("task_id", taskID).Msg("invalid task data provided")
		return models.Task{}, err
	}

	if err := s.checkOwnership(ctx, principalID, taskID); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:          taskID,
		Title:       request.Title,
		Description: request.Description,
		Status:      request.Status,
		Priority:    request.Priority,
		DueDate:     request.DueDate,
		UserID:      principalID,
	}

	updated, err := s.taskRepository.UpdateTask(ctx, task)
	if err != nil {
		log.Err(err).Int64("user_id", principalID).Int64("task_id", taskID).Msg("task update failed")
		return models.Task{}, fmt.Errorf("task update failed: %w", err)
	}

	return updated, nil
}

// DeleteTask permanently removes an existing task.
//
// Returns:
//   - store.ErrTaskNotFound if no task with taskID exists.
//   - ErrTaskAccessDenied if the task is owned by someone else.
func (s *taskService) DeleteTask(ctx context.Context, principalID, taskID int64) error {
	log := logger.FromContext(ctx)

	if err := s.checkOwnership(ctx, principalID, taskID); err != nil {
		return err
	}

	if err := s.taskRepository.DeleteTask(ctx, taskID, principalID); err != nil {
		log.Err(err).Int64("user_id", principalID).Int64("task_id", taskID).Msg("task deletion failed")
		return fmt.Errorf("task deletion failed: %w", err)
	}

	return nil
}

// checkOwnership loads the task by ID and verifies it belongs to the
// principal. A task owned by someone else yields ErrTaskAccessDenied; a
// missing task passes through store.ErrTaskNotFound unchanged.
func (s *taskService) checkOwnership(ctx context.Context, principalID, taskID int64) error {
	log := logger.FromContext(ctx)

	found, err := s.taskRepository.FindTaskByID(ctx, taskID)
	if err != nil {
		return err
	}

	if found.UserID != principalID {
		log.Warn().
			Int64("user_id", principalID).
			Int64("task_id", taskID).
			Int64("owner_id", found.UserID).
			Msg("task access denied")
		return ErrTaskAccessDenied
	}

	return nil
}

func validateTaskRequest(request models.TaskRequest) error {
	if request.Title == "" {
		return ErrInvalidDataProvided
	}

	if !request.Status.Valid() || !request.Priority.Valid() {
		return ErrInvalidDataProvided
	}

	return nil
}
