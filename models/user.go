package models

import "time"

// Role is the authorization role assigned to a user account.
// Only RoleUser is exercised by the current flows; RoleAdmin is declared
// for forward compatibility and carries no special behavior anywhere in
// the service layer.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the declared role values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the persistence layer on insert.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a one-way hash, never plaintext, and is never
	// serialized to JSON or written to logs.
	PasswordHash string `json:"-"`

	// Role is the account's authorization role. New accounts are always
	// created with RoleUser.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
