package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "STATIC_DIR", "PUBLIC_ORIGIN", "ALLOWED_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "./tierboard.db", cfg.DBPath)
	assert.Equal(t, "http://localhost:8080", cfg.PublicOrigin)
	assert.Equal(t, []string{"http://localhost:*"}, cfg.AllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("PUBLIC_ORIGIN", "https://tiers.example/")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "https://tiers.example", cfg.PublicOrigin)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DB_PATH", "/tmp/x.db")

	cfg, err := Load([]string{"-port", "7000", "-db", "/tmp/y.db"})
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "/tmp/y.db", cfg.DBPath)
	assert.Equal(t, "http://localhost:7000", cfg.PublicOrigin)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port env", map[string]string{"PORT": "eighty"}, nil},
		{"port out of range", nil, []string{"-port", "70000"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, nil},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.args)
			assert.Error(t, err)
		})
	}
}
