package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "Operation failed"
	testErr := errors.New("internal database error")

	// nil err returns the fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release mode never exposes details
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug mode passes the error through
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// no loaded config counts as development
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_EmbeddedDefaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":5005", cfg.Server.Port)
	assert.NotEmpty(t, cfg.Database.DBName)

	// derived and floor-clamped values
	assert.Equal(t, 24, cfg.JWT.ExpireHours)
	assert.Equal(t, 24*3600.0, cfg.JWT.ExpireTime.Seconds())
	assert.Equal(t, 10, cfg.RateLimit.MaxAttempts)
	assert.Equal(t, 15, cfg.RateLimit.WindowMinutes)

	assert.Same(t, cfg, GlobalConfig)
}

func TestGetConfig_PanicsWhenUnloaded(t *testing.T) {
	GlobalConfig = nil
	assert.Panics(t, func() { GetConfig() })
}
