package components

import (
	"fmt"

	"github.com/theirongolddev/ladder/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForCompletion moves from cyan through accent to green as a
// challenge fills up.
func ColorForCompletion(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.GreenBright
	case pct >= 0.75:
		return t.Green
	case pct >= 0.4:
		return t.Accent
	default:
		return t.Cyan
	}
}

// CompletionBar renders a labeled gradient bar for the completion rate.
// pct is a 0-1 fraction.
func CompletionBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active
	pct = clamp01(pct)

	bar := progress.New(
		progress.WithGradient(string(t.Cyan), string(t.GreenBright)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(ColorForCompletion(pct)).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", pct*100))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
