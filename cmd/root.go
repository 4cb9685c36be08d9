// Package cmd implements the ladder CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/theirongolddev/ladder/internal/config"
	"github.com/theirongolddev/ladder/internal/tui/theme"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagLabel   string
	flagHorizon int
	flagTheme   string
	flagEnvFile string
)

var rootCmd = &cobra.Command{
	Use:   "ladder",
	Short: "Savings ladder challenge tracker",
	Long: "Track a savings challenge of numbered positions: slot N is worth N units.\n" +
		"Inject liquidity, fund positions and watch the ladder fill up.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Dotenv file with LADDER_* overrides")
	rootCmd.PersistentFlags().StringVarP(&flagLabel, "label", "l", "", "Challenge label")
	rootCmd.PersistentFlags().IntVarP(&flagHorizon, "horizon", "n", 0, "Challenge horizon in units")
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "Color theme")
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}

// loadConfig is the shared config path used by all commands: dotenv,
// then the config file with LADDER_* overrides, then command-line flags.
func loadConfig() (config.Config, error) {
	if err := godotenv.Load(flagEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, fmt.Errorf("loading %s: %w", flagEnvFile, err)
	}

	cfg, err := config.LoadFrom(configPath())
	if err != nil {
		return cfg, err
	}

	if flagLabel != "" {
		cfg.General.Label = flagLabel
	}
	if flagHorizon != 0 {
		cfg.General.DefaultHorizon = flagHorizon
	}
	if flagTheme != "" {
		if theme.ByName(flagTheme).Name != flagTheme {
			return cfg, fmt.Errorf("unknown theme %q (available: %v)", flagTheme, theme.Names())
		}
		cfg.Appearance.Theme = flagTheme
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
