package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("APP_TOKEN_DURATION", "12h")
	t.Setenv("APP_BCRYPT_COST", "12")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/db")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:8081")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}

func TestParseEnv_EmptyEnvironmentIsZeroConfig(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}
