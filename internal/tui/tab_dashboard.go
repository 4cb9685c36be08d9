package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ladder/internal/cli"
	"github.com/theirongolddev/ladder/internal/tui/components"
	"github.com/theirongolddev/ladder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	p := a.ctrl.Portfolio()
	rate := p.CompletionRate()

	var b strings.Builder

	metrics := []components.Metric{
		{
			Label: "Available liquidity",
			Value: a.money.Format(p.Liquidity()),
			Note:  "ready to allocate",
			Color: t.AccentBright,
		},
		{
			Label: "Consolidated",
			Value: a.money.FormatUnits(p.ConsolidatedTotal()),
			Note:  "of " + a.money.FormatUnits(p.AggregateGoal()),
			Color: t.GreenBright,
		},
		{
			Label: "Completion",
			Value: cli.FormatPercent(rate),
			Note:  fmt.Sprintf("%d/%d slots", p.FundedCount(), p.Horizon()),
			Color: components.ColorForCompletion(rate / 100),
		},
		{
			Label: "Remaining exposure",
			Value: a.money.FormatUnits(p.RemainingExposure()),
			Note:  "still to fund",
		},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	if a.injecting {
		b.WriteString(components.ContentCard("Inject liquidity", a.renderAmountInput(), cw))
		b.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Progress", a.renderProgress(cw), cw))
	b.WriteString("\n")

	widths := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Next allocation", a.renderRecommendation(), widths[0]),
		components.ContentCard("Largest positions", a.renderLargest(), widths[1]),
	}))

	return b.String()
}

func (a App) renderAmountInput() string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	return a.amountIn.View() + "\n" +
		dim.Render("Amount in "+a.money.Code()+", comma or dot as decimal separator")
}

func (a App) renderProgress(cw int) string {
	t := theme.Active
	p := a.ctrl.Portfolio()

	innerW := components.CardInnerWidth(cw)
	const labelW = 12
	barW := innerW - labelW - 9
	if barW < 10 {
		barW = 10
	}

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(components.CompletionBar("Completion", p.CompletionRate()/100, labelW, barW))
	b.WriteString("\n\n")

	// One band per column so the whole horizon fits on a line.
	bands := p.CoverageBands(innerW - labelW - 1)
	b.WriteString(muted.Render(fmt.Sprintf("%-*s ", labelW, "Coverage")))
	b.WriteString(components.Sparkline(bands, t.Accent))
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("%-*s 1 %s %d", labelW, "", strings.Repeat("·", 3), p.Horizon())))

	return b.String()
}

func (a App) renderRecommendation() string {
	t := theme.Active
	p := a.ctrl.Portfolio()

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	key := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)

	unit, ok := p.RecommendedUnit()
	if !ok {
		if p.FundedCount() == p.Horizon() {
			return muted.Render("Every slot is funded.")
		}
		return muted.Render("No open slot fits the available liquidity.") + "\n" +
			muted.Render("Press ") + key.Render("i") + muted.Render(" to inject more.")
	}

	return muted.Render("Largest affordable slot: ") + value.Render(fmt.Sprintf("#%d", unit)) + "\n" +
		muted.Render("Allocates ") + value.Render(a.money.FormatUnits(int64(unit))) + "\n" +
		muted.Render("Press ") + key.Render("a") + muted.Render(" to fund it.")
}

func (a App) renderLargest() string {
	t := theme.Active
	p := a.ctrl.Portfolio()

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	green := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)

	units := p.LargestFunded(largestShown)
	if len(units) == 0 {
		return muted.Render("Nothing funded yet.")
	}

	lines := make([]string, 0, len(units))
	for _, u := range units {
		lines = append(lines, muted.Render(fmt.Sprintf("slot %-5d ", u))+
			green.Render("+")+value.Render(a.money.FormatUnits(int64(u))))
	}
	return strings.Join(lines, "\n")
}
