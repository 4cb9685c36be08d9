package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/ladder/internal/config"
	"github.com/theirongolddev/ladder/internal/logging"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := configPath()
	fmt.Printf("  Config file: %s\n", path)
	if fileExists(path) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Label:           %s\n", cfg.General.Label)
	fmt.Printf("    Default horizon: %d units\n", cfg.General.DefaultHorizon)
	fmt.Printf("    Currency:        %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Status]")
	fmt.Printf("    Display time: %s\n", cfg.StatusTTL())
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", logging.ParseLevel(cfg.Log.Level))
	fmt.Printf("    File:  %s\n", cfg.LogFile())
	fmt.Println()

	fmt.Println("  Run `ladder setup` to reconfigure.")
	return nil
}

func fileExists(path string) bool {
	if path == config.Path() {
		return config.Exists()
	}
	_, err := os.Stat(path)
	return err == nil
}
