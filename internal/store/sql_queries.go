package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/zentask/zentask-server/models"
)

// Column sets shared by the query builders below. Listed explicitly (never
// SELECT *) so scan destinations and columns stay in lockstep.
var (
	userColumns = []string{"user_id", "name", "email", "password_hash", "role", "created_at"}
	taskColumns = []string{"id", "title", "description", "status", "priority", "due_date", "user_id", "created_at", "updated_at"}
)

// dueDateArg converts an optional due date into a bindable argument:
// nil maps to SQL NULL, a set date maps to its time value.
func dueDateArg(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("name", "email", "password_hash", "role").
		Values(user.Name, user.Email, user.PasswordHash, user.Role).
		Suffix("RETURNING user_id, name, email, password_hash, role, created_at").
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertTaskQuery(b sq.StatementBuilderType, task models.Task) (string, []any, error) {
	return b.Insert(task.TableName()).
		Columns("title", "description", "status", "priority", "due_date", "user_id").
		Values(task.Title, task.Description, task.Status, task.Priority, dueDateArg(task.DueDate), task.UserID).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
}

func buildSelectTaskByIDQuery(b sq.StatementBuilderType, taskID int64) (string, []any, error) {
	return b.Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"id": taskID}).
		ToSql()
}

// buildSelectTasksByOwnerQuery lists an owner's tasks ordered by id
// ascending, which equals insertion order for serial keys.
func buildSelectTasksByOwnerQuery(b sq.StatementBuilderType, ownerID int64) (string, []any, error) {
	return b.Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("id ASC").
		ToSql()
}

// buildUpdateTaskQuery rewrites every owner-mutable column. The WHERE clause
// is scoped by both id and user_id: the owner column itself is never part of
// the SET list, so a task can never migrate between users.
func buildUpdateTaskQuery(b sq.StatementBuilderType, task models.Task, now time.Time) (string, []any, error) {
	return b.Update(task.TableName()).
		Set("title", task.Title).
		Set("description", task.Description).
		Set("status", task.Status).
		Set("priority", task.Priority).
		Set("due_date", dueDateArg(task.DueDate)).
		Set("updated_at", now).
		Where(sq.Eq{"id": task.ID, "user_id": task.UserID}).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
}

func buildDeleteTaskQuery(b sq.StatementBuilderType, taskID, ownerID int64) (string, []any, error) {
	return b.Delete(models.Task{}.TableName()).
		Where(sq.Eq{"id": taskID, "user_id": ownerID}).
		ToSql()
}
