package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zentask/zentask-server/internal/logger"
	"github.com/zentask/zentask-server/models"
)

// taskRepository is the SQL-backed implementation of [TaskRepository].
// It executes all task CRUD operations against the "tasks" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (task_id, user_id).
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// scanTask scans one row of taskColumns into a [models.Task], converting the
// nullable due_date column into the optional Date pointer.
func scanTask(row interface{ Scan(...any) error }) (models.Task, error) {
	var task models.Task
	var due sql.NullTime

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&due,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	if due.Valid {
		task.DueDate = &models.Date{Time: due.Time}
	}

	return task, nil
}

// CreateTask persists a new task owned by task.UserID and returns the fully
// populated [models.Task] with server-assigned fields (ID, CreatedAt,
// UpdatedAt). The INSERT returns all columns via a RETURNING clause.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTaskQuery(r.db.builder, task)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("failed to build query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*taskRepository.CreateTask").
			Int64("user_id", task.UserID).
			Bool("retryable", r.db.classifier.Classify(err) == Retryable).
			Msg("error executing insert")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	saved, err := scanTask(row)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error scanning inserted row")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// FindTaskByID retrieves a single task by primary key, regardless of owner.
// Returns [ErrTaskNotFound] on an empty result set. The ownership decision
// belongs to the caller, which needs the row to make it.
func (r *taskRepository) FindTaskByID(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTaskByIDQuery(r.db.builder, taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTaskByID").Msg("failed to build query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "*taskRepository.FindTaskByID").
			Int64("task_id", taskID).
			Msg("error executing select")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.FindTaskByID").Msg("error scanning task row")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// FindTasksByOwner retrieves every task owned by ownerID, ordered by id
// ascending. Returns an empty slice when the owner has no tasks.
func (r *taskRepository) FindTasksByOwner(ctx context.Context, ownerID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTasksByOwnerQuery(r.db.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasksByOwner").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.FindTasksByOwner").
			Int64("user_id", ownerID).
			Bool("retryable", r.db.classifier.Classify(err) == Retryable).
			Msg("error executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 16)

	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*taskRepository.FindTasksByOwner").
				Int64("user_id", ownerID).
				Msg("error scanning task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*taskRepository.FindTasksByOwner").
			Int64("user_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// UpdateTask rewrites the mutable columns of the task identified by task.ID
// and task.UserID and returns the persisted form. The owner column is never
// updated. Returns [ErrTaskNotFound] when no row matches both id and owner —
// the query's WHERE clause is the last line of defence behind the service
// level ownership check.
func (r *taskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(r.db.builder, task, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("failed to build query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "*taskRepository.UpdateTask").
			Int64("task_id", task.ID).
			Int64("user_id", task.UserID).
			Bool("retryable", r.db.classifier.Classify(err) == Retryable).
			Msg("error executing update")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updated, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error scanning updated row")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteTask permanently removes the task identified by taskID and ownerID.
// Returns [ErrTaskNotFound] when no row matches both (already deleted, never
// existed, or owned by someone else).
func (r *taskRepository) DeleteTask(ctx context.Context, taskID, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTaskQuery(r.db.builder, taskID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.DeleteTask").
			Int64("task_id", taskID).
			Int64("user_id", ownerID).
			Bool("retryable", r.db.classifier.Classify(err) == Retryable).
			Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error reading rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
