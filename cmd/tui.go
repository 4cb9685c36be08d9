package cmd

import (
	"fmt"

	"github.com/theirongolddev/ladder/internal/logging"
	"github.com/theirongolddev/ladder/internal/tui"
	"github.com/theirongolddev/ladder/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard (default)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// The TUI owns the terminal, so operations are logged to a file.
	log, closer, err := logging.OpenFile(cfg.LogFile(), logging.Config{Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	defer closer.Close()

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app, err := tui.NewApp(cfg, log)
	if err != nil {
		return err
	}
	app = app.WithConfigPath(configPath())

	log.Info().
		Str("label", cfg.General.Label).
		Int("horizon", cfg.General.DefaultHorizon).
		Str("currency", cfg.General.Currency).
		Msg("session started")

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
