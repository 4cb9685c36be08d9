package cmd

import (
	"fmt"

	"github.com/theirongolddev/ladder/internal/challenge"
	"github.com/theirongolddev/ladder/internal/cli"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compare the available horizons",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	money := cli.NewMoneyFormatter(cfg.General.Currency)

	rows := make([][]string, 0, len(challenge.HorizonOptions()))
	for _, n := range challenge.HorizonOptions() {
		goal := challenge.AggregateGoal(n)
		marker := ""
		if n == cfg.General.DefaultHorizon {
			marker = "default"
		}
		rows = append(rows, []string{
			cli.FormatNumber(int64(n)),
			money.FormatUnits(goal),
			money.FormatUnits(int64(n)),
			money.Format(challenge.AverageSlot(n)),
			marker,
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HORIZONS  %s", money.Code())))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Units", "Goal", "Largest slot", "Avg slot", ""},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
