package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := LoadConfig("nonexistent.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)

	// Untouched fields keep their defaults
	assert.Equal(t, "postgres", cfg.Database.User)
}

func TestApplyEnvOverrides_BadInteger(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")

	err := applyEnvOverrides(&Config{})
	assert.ErrorContains(t, err, "DB_MAX_OPEN_CONNS")
}

func TestApplyEnvOverrides_RequiresStructPointer(t *testing.T) {
	err := applyEnvOverrides("not a struct")
	assert.Error(t, err)
}
