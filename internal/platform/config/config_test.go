package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("EREPORTING_ADDR", "")
	t.Setenv("JWT_SIGNING_KEY", "")

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "dev-secret-key-change-in-production", cfg.JWTSigningKey)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("EREPORTING_ADDR", ":9090")
	t.Setenv("JWT_SIGNING_KEY", "prod-key")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "prod-key", cfg.JWTSigningKey)
}
