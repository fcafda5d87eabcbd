package store

import (
	"strings"
	"testing"
	"time"

	"github.com/zentask/zentask-server/models"
)

func TestBuildInsertUserQuery(t *testing.T) {
	b := builderFor(DialectPostgres)
	user := models.User{Name: "John", Email: "john@example.com", PasswordHash: "hash", Role: models.RoleUser}

	query, args, err := buildInsertUserQuery(b, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "INSERT INTO users") {
		t.Errorf("expected INSERT INTO users, got: %s", query)
	}
	if !strings.Contains(query, "RETURNING user_id") {
		t.Errorf("expected RETURNING clause, got: %s", query)
	}
	if len(args) != 4 {
		t.Errorf("expected 4 args, got %d", len(args))
	}
}

func TestBuildSelectUserQueries_Placeholders(t *testing.T) {
	pg := builderFor(DialectPostgres)
	lite := builderFor(DialectSQLite)

	pgQuery, _, err := buildSelectUserByEmailQuery(pg, "a@b.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	liteQuery, _, err := buildSelectUserByEmailQuery(lite, "a@b.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(pgQuery, "$1") {
		t.Errorf("expected dollar placeholder for postgres, got: %s", pgQuery)
	}
	if !strings.Contains(liteQuery, "?") {
		t.Errorf("expected question placeholder for sqlite, got: %s", liteQuery)
	}
}

func TestBuildInsertTaskQuery_NilDueDate(t *testing.T) {
	b := builderFor(DialectPostgres)
	task := models.Task{Title: "t", Status: models.StatusTodo, Priority: models.PriorityLow, UserID: 1}

	query, args, err := buildInsertTaskQuery(b, task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "INSERT INTO tasks") {
		t.Errorf("expected INSERT INTO tasks, got: %s", query)
	}
	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d", len(args))
	}
	if args[4] != nil {
		t.Errorf("expected nil due_date arg, got %v", args[4])
	}
}

func TestBuildSelectTasksByOwnerQuery_Ordering(t *testing.T) {
	b := builderFor(DialectPostgres)

	query, args, err := buildSelectTasksByOwnerQuery(b, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "ORDER BY id ASC") {
		t.Errorf("expected deterministic ordering, got: %s", query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Errorf("expected single owner arg, got %v", args)
	}
}

func TestBuildUpdateTaskQuery_ScopedByOwner(t *testing.T) {
	b := builderFor(DialectPostgres)
	task := models.Task{ID: 5, Title: "t", Status: models.StatusDone, Priority: models.PriorityHigh, UserID: 3}

	query, args, err := buildUpdateTaskQuery(b, task, time.Now().UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "UPDATE tasks") {
		t.Errorf("expected UPDATE tasks, got: %s", query)
	}
	if !strings.Contains(query, "user_id =") {
		t.Errorf("expected owner-scoped WHERE clause, got: %s", query)
	}
	if !strings.Contains(query, "RETURNING") {
		t.Errorf("expected RETURNING clause, got: %s", query)
	}
	// 6 SET args + id + user_id
	if len(args) != 8 {
		t.Errorf("expected 8 args, got %d", len(args))
	}
}

func TestBuildDeleteTaskQuery_ScopedByOwner(t *testing.T) {
	b := builderFor(DialectPostgres)

	query, args, err := buildDeleteTaskQuery(b, 5, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "DELETE FROM tasks") {
		t.Errorf("expected DELETE FROM tasks, got: %s", query)
	}
	if !strings.Contains(query, "user_id =") {
		t.Errorf("expected owner-scoped WHERE clause, got: %s", query)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}
