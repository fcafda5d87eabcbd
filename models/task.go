package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// Valid reports whether s is one of the declared status values.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the declared priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// dateLayout is the wire and storage format of a calendar date.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// It serializes to JSON as "YYYY-MM-DD" and maps to a DATE column.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implements json.Marshaler using the YYYY-MM-DD layout.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a quoted
// YYYY-MM-DD string or JSON null (which leaves the date zero-valued).
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date: %s", s)
	}

	parsed, err := time.Parse(dateLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	d.Time = parsed
	return nil
}

// Value implements driver.Valuer so a Date can be bound to a DATE column.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner for DATE columns. It accepts time.Time
// (pgx, sqlite with parseTime) and textual YYYY-MM-DD values.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case time.Time:
		d.Time = v.UTC().Truncate(24 * time.Hour)
		return nil
	case string:
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			return fmt.Errorf("scanning date: %w", err)
		}
		d.Time = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	}
	return fmt.Errorf("scanning date: unsupported type %T", src)
}

// Task represents a single to-do item owned by exactly one user.
//
// Every field except ID and UserID is mutable by the owner. The owner
// reference is set at creation time and is never reassigned afterwards.
type Task struct {
	// ID is the unique identifier of the task, assigned by the
	// persistence layer on insert.
	ID int64 `json:"id"`

	// Title is the required short summary of the task.
	Title string `json:"title"`

	// Description is optional free text.
	Description string `json:"description"`

	// Status is the workflow state of the task.
	Status TaskStatus `json:"status"`

	// Priority is the urgency level of the task.
	Priority Priority `json:"priority"`

	// DueDate is the optional calendar date the task is due.
	// Nil means no due date is set.
	DueDate *Date `json:"dueDate,omitempty"`

	// UserID is the identifier of the owning user. It is mandatory,
	// references an existing user, and never changes after creation.
	UserID int64 `json:"userId"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the most recent modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}
