package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zentask/zentask-server/internal/logger"
	"github.com/zentask/zentask-server/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Password
// hashes pass through this layer but are never logged.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
//
// Error handling:
//   - unique-constraint violation on email → [ErrEmailAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db
	if err := row.Err(); err != nil {
		if r.db.classifier.IsUniqueViolation(err) {
			log.Debug().Str("email", user.Email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyRegistered
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.classifier.Classify(err) == Retryable).
			Msg("error executing insert")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db
	var saved models.User
	if err := row.Scan(&saved.UserID, &saved.Name, &saved.Email, &saved.PasswordHash, &saved.Role, &saved.CreatedAt); err != nil {
		if r.db.classifier.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyRegistered
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error scanning inserted row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// value. Returns [ErrNoUserWasFound] on an empty result set.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", func() (string, []any, error) {
		return buildSelectUserByEmailQuery(r.db.builder, email)
	})
}

// FindUserByID retrieves the user record with the given primary key.
// Returns [ErrNoUserWasFound] on an empty result set.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", func() (string, []any, error) {
		return buildSelectUserByIDQuery(r.db.builder, userID)
	})
}

// findUser runs a single-row user lookup built by buildQuery and scans the
// result. Shared by the by-email and by-id lookups.
func (r *userRepository) findUser(ctx context.Context, caller string, buildQuery func() (string, []any, error)) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQuery()
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", caller).
			Bool("retryable", r.db.classifier.Classify(err) == Retryable).
			Msg("error executing select")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var foundUser models.User
	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Role, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", caller).Msg("error scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}
