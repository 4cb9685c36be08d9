// Package config loads and saves ladder preferences from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/ladder/internal/challenge"

	"github.com/BurntSushi/toml"
	"github.com/Rhymond/go-money"
)

// Config holds all ladder configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Status     StatusConfig     `toml:"status"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds challenge defaults.
type GeneralConfig struct {
	Label          string `toml:"label"`
	DefaultHorizon int    `toml:"default_horizon"`
	Currency       string `toml:"currency"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// StatusConfig controls the transient status line.
type StatusConfig struct {
	TTLMillis int `toml:"ttl_ms"`
}

// LogConfig controls the operation log.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Label:          "Asset Manager",
			DefaultHorizon: challenge.DefaultHorizon,
			Currency:       money.BRL,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Status: StatusConfig{
			TTLMillis: int(challenge.DefaultStatusTTL / time.Millisecond),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ladder")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ladder")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// StateDir returns the XDG-compliant state directory (log files).
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "ladder")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "ladder")
}

// LoadFrom reads the config at path. A missing file yields defaults;
// LADDER_* environment overrides are applied on top.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv lets LADDER_* variables override file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("LADDER_LABEL"); v != "" {
		cfg.General.Label = v
	}
	if v := os.Getenv("LADDER_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv("LADDER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Validate reports the first setting ladder cannot run with.
func (c Config) Validate() error {
	if !challenge.IsHorizonOption(c.General.DefaultHorizon) {
		return fmt.Errorf("general.default_horizon %d: must be one of %v",
			c.General.DefaultHorizon, challenge.HorizonOptions())
	}
	if money.GetCurrency(c.General.Currency) == nil {
		return fmt.Errorf("general.currency %q: unknown currency code", c.General.Currency)
	}
	if c.Status.TTLMillis <= 0 {
		return fmt.Errorf("status.ttl_ms %d: must be positive", c.Status.TTLMillis)
	}
	return nil
}

// StatusTTL is the status display duration.
func (c Config) StatusTTL() time.Duration {
	return time.Duration(c.Status.TTLMillis) * time.Millisecond
}

// LogFile is the configured log path, or the default under StateDir.
func (c Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(StateDir(), "ladder.log")
}
