package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/ladder/internal/challenge"
	"github.com/theirongolddev/ladder/internal/cli"
	"github.com/theirongolddev/ladder/internal/logging"
	"github.com/theirongolddev/ladder/internal/script"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagConfirm string
	flagVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [script|-]",
	Short: "Replay an operation script against a fresh challenge",
	Long: "Replay one operation per line against a fresh challenge:\n\n" +
		"  inject <amount>   add liquidity (comma or dot decimals)\n" +
		"  toggle <unit>     fund or release a slot\n" +
		"  fund              fund the recommended slot\n" +
		"  horizon <n>       change the horizon\n" +
		"  show              print the current state\n\n" +
		"Lines starting with # are comments. Reads stdin when no file is given;\n" +
		"refund prompts need a terminal, so stdin scripts default to --confirm=no.",
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagConfirm, "confirm", "ask", "Horizon refund confirmation: ask, yes or no (no when the script comes from stdin)")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every operation to stderr")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fromStdin := len(args) == 0 || args[0] == "-"
	mode, err := resolveConfirmMode(flagConfirm, cmd.Flags().Changed("confirm"), fromStdin)
	if err != nil {
		return err
	}
	confirm, err := confirmerFor(mode)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if !fromStdin {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in = f
	}

	steps, err := script.Parse(in)
	if err != nil {
		return err
	}

	log := zerolog.Nop()
	if flagVerbose {
		log = logging.New(os.Stderr, logging.Config{Level: "debug", Pretty: true})
	}

	p, err := challenge.NewPortfolio(cfg.General.Label, cfg.General.DefaultHorizon)
	if err != nil {
		return err
	}
	money := cli.NewMoneyFormatter(cfg.General.Currency)
	ctrl := challenge.NewController(p, challenge.Options{
		StatusTTL: cfg.StatusTTL(),
		Format:    money.Format,
		Logger:    log,
	})

	fmt.Println()
	for _, step := range steps {
		if step.Op == script.OpShow {
			fmt.Print(renderChallenge(p, money))
			continue
		}

		res := script.Apply(ctrl, step, confirm)
		switch {
		case res.Declined:
			fmt.Printf("  %3d  %s\n", step.Line, cli.RenderStatus("", fmt.Sprintf("Horizon %d declined, nothing changed.", step.N)))
		case !res.Status.IsZero():
			fmt.Printf("  %3d  %s\n", step.Line, cli.RenderStatus(res.Status.Kind.String(), res.Status.Message))
		}
	}

	fmt.Println()
	fmt.Print(renderChallenge(p, money))
	return nil
}

// resolveConfirmMode settles the prompt mode before any input is read.
// A script piped on stdin leaves no terminal for huh to prompt on.
func resolveConfirmMode(mode string, explicit, fromStdin bool) (string, error) {
	if mode != "ask" || !fromStdin {
		return mode, nil
	}
	if explicit {
		return "", errors.New("--confirm=ask needs a script file, stdin is busy with the script")
	}
	return "no", nil
}

func confirmerFor(mode string) (challenge.Confirmer, error) {
	switch mode {
	case "yes":
		return challenge.Always(true), nil
	case "no":
		return challenge.Always(false), nil
	case "ask":
		return challenge.ConfirmFunc(askConfirm), nil
	default:
		return nil, fmt.Errorf("--confirm must be ask, yes or no, got %q", mode)
	}
}

// askConfirm prompts on the terminal. Any prompt failure counts as "no".
func askConfirm(prompt string) bool {
	var ok bool
	err := huh.NewConfirm().
		Title("Reduce horizon?").
		Description(prompt).
		Affirmative("Refund and reduce").
		Negative("Cancel").
		Value(&ok).
		Run()
	return err == nil && ok
}

func renderChallenge(p *challenge.Portfolio, money cli.MoneyFormatter) string {
	snap := p.Snapshot()

	rec := "-"
	if snap.RecommendedUnit > 0 {
		rec = fmt.Sprintf("slot %d (%s)", snap.RecommendedUnit, money.FormatUnits(int64(snap.RecommendedUnit)))
	}

	rows := [][]string{
		{"Horizon", fmt.Sprintf("%d units", snap.Horizon)},
		{"Goal", money.FormatUnits(snap.AggregateGoal)},
		{"---"},
		{"Liquidity", money.Format(p.Liquidity())},
		{"Consolidated", money.FormatUnits(snap.ConsolidatedTotal)},
		{"Remaining", money.FormatUnits(snap.RemainingExposure)},
		{"Completion", cli.FormatPercent(snap.CompletionRate)},
		{"---"},
		{"Funded", cli.FormatUnitList(snap.Funded, 10)},
		{"Largest", cli.FormatUnitList(p.LargestFunded(5), 0)},
		{"Next", rec},
	}

	return cli.RenderTitle("LADDER  "+snap.Label) + "\n\n" +
		cli.RenderTable(cli.Table{Headers: []string{"Metric", "Value"}, Rows: rows}) +
		"  Slots " + cli.RenderProgressBar(len(snap.Funded), snap.Horizon, 30) + "\n\n"
}
