package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUser_JSONNeverExposesPasswordHash guards the serialization boundary:
// the bcrypt hash must not appear in any JSON representation of a user.
func TestUser_JSONNeverExposesPasswordHash(t *testing.T) {
	u := User{
		UserID:       7,
		Name:         "Ann",
		Email:        "ann@x.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         RoleUser,
	}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "$2a$10$")
	assert.NotContains(t, string(b), "password")
	assert.Contains(t, string(b), `"email":"ann@x.com"`)
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("ROOT").Valid())
}
