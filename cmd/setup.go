package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/ladder/internal/challenge"
	"github.com/theirongolddev/ladder/internal/config"
	"github.com/theirongolddev/ladder/internal/tui/theme"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupCurrencies are offered in the wizard; any ISO code works in the file.
var setupCurrencies = []string{money.BRL, money.USD, money.EUR, money.GBP, money.JPY}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	horizons := make([]huh.Option[int], 0, len(challenge.HorizonOptions()))
	for _, n := range challenge.HorizonOptions() {
		horizons = append(horizons, huh.NewOption(strconv.Itoa(n)+" units", n))
	}
	currencies := make([]huh.Option[string], 0, len(setupCurrencies))
	for _, code := range setupCurrencies {
		currencies = append(currencies, huh.NewOption(code, code))
	}
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themes = append(themes, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Challenge label").
				Value(&cfg.General.Label).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("label cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Default horizon").
				Options(horizons...).
				Value(&cfg.General.DefaultHorizon),
			huh.NewSelect[string]().
				Title("Currency").
				Options(currencies...).
				Value(&cfg.General.Currency),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&cfg.Appearance.Theme),
		),
	).WithTheme(huh.ThemeBase16())

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	path := configPath()
	if err := config.SaveTo(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", path)
	fmt.Println("  Run `ladder setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
