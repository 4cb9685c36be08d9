package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("LADDER_LABEL", "")
	t.Setenv("LADDER_THEME", "")
	t.Setenv("LADDER_LOG_LEVEL", "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 4*time.Second, cfg.StatusTTL())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("LADDER_LABEL", "")
	t.Setenv("LADDER_THEME", "")
	t.Setenv("LADDER_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.General.Label = "Vacation fund"
	cfg.General.DefaultHorizon = 365
	cfg.General.Currency = "EUR"
	cfg.Appearance.Theme = "tokyo-night"

	require.NoError(t, SaveTo(path, cfg))
	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[general]\nlabel = \"file\"\n"), 0o600))

	t.Setenv("LADDER_LABEL", "env")
	t.Setenv("LADDER_THEME", "terminal")
	t.Setenv("LADDER_LOG_LEVEL", "debug")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.General.Label)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset keys keep their defaults.
	assert.Equal(t, 200, cfg.General.DefaultHorizon)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[general\n"), 0o600))

	_, err := LoadFrom(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad horizon", func(c *Config) { c.General.DefaultHorizon = 150 }, "default_horizon"},
		{"bad currency", func(c *Config) { c.General.Currency = "XXX1" }, "currency"},
		{"bad ttl", func(c *Config) { c.Status.TTLMillis = 0 }, "ttl_ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestLogFileDefaultsToStateDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	cfg := DefaultConfig()
	assert.Equal(t, "/tmp/state/ladder/ladder.log", cfg.LogFile())

	cfg.Log.File = "/var/log/ladder.log"
	assert.Equal(t, "/var/log/ladder.log", cfg.LogFile())
}
