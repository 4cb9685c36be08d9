package tui

import (
	"fmt"

	"github.com/theirongolddev/ladder/internal/challenge"
	"github.com/theirongolddev/ladder/internal/cli"
	"github.com/theirongolddev/ladder/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// horizonFlow is the two-step horizon change: pick a size, then confirm
// the refund when funded slots fall outside it.
type horizonFlow struct {
	form    *huh.Form
	choice  int
	confirm bool
	plan    challenge.HorizonChange
	asking  bool // on the confirmation step
}

func (a App) formWidth() int {
	w := a.contentWidth() - 8
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 30
	}
	return w
}

func newHorizonSelect(current int, money *cli.MoneyFormatter, value *int) *huh.Form {
	opts := make([]huh.Option[int], 0, len(challenge.HorizonOptions()))
	for _, n := range challenge.HorizonOptions() {
		label := fmt.Sprintf("%4d units  goal %s", n, money.FormatUnits(challenge.AggregateGoal(n)))
		if n == current {
			label += "  (current)"
		}
		opts = append(opts, huh.NewOption(label, n))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Challenge horizon").
				Description("Number of positions in the ladder.").
				Options(opts...).
				Value(value),
		),
	).WithTheme(huh.ThemeBase16()).WithShowHelp(true)
}

func newRefundConfirm(plan challenge.HorizonChange, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Reduce horizon to %d?", plan.To)).
				Description(challenge.ConfirmPrompt(plan)).
				Affirmative("Refund and reduce").
				Negative("Cancel").
				Value(value),
		),
	).WithTheme(huh.ThemeBase16()).WithShowHelp(true)
}

func (a App) startHorizonFlow() (tea.Model, tea.Cmd) {
	flow := &horizonFlow{choice: a.ctrl.Portfolio().Horizon()}
	flow.form = newHorizonSelect(flow.choice, a.money, &flow.choice).WithWidth(a.formWidth())
	a.horizon = flow
	return a, flow.form.Init()
}

func (a App) updateHorizonForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	flow := a.horizon

	form, cmd := flow.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		flow.form = f
	}

	switch flow.form.State {
	case huh.StateAborted:
		a.horizon = nil
		return a, nil

	case huh.StateCompleted:
		if !flow.asking {
			plan, err := a.ctrl.PlanHorizon(flow.choice)
			if err != nil || !plan.NeedsConfirm {
				// Nothing to confirm: apply directly (unknown sizes report their own error).
				a.horizon = nil
				return a.applyHorizon(flow.choice, nil)
			}
			flow.plan = plan
			flow.asking = true
			flow.form = newRefundConfirm(plan, &flow.confirm).WithWidth(a.formWidth())
			return a, flow.form.Init()
		}

		a.horizon = nil
		return a.applyHorizon(flow.choice, challenge.ConfirmFunc(func(string) bool {
			return flow.confirm
		}))
	}

	return a, cmd
}

func (a App) applyHorizon(to int, confirm challenge.Confirmer) (tea.Model, tea.Cmd) {
	hc, err := a.ctrl.SetHorizon(to, confirm)
	if err == nil && !hc.Applied {
		// Declined: no status to expire.
		return a, nil
	}
	if hc.Applied {
		a.clampGrid()
	}
	return a, a.expireStatus()
}

func (a App) viewHorizonForm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	body := a.horizon.form.View() + "\n" + dim.Render("Esc to cancel")
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}
