package components

import (
	"strings"

	"github.com/theirongolddev/ladder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar: the current status message on the
// left (colored by kind: "success", "info" or "error") and key hints on the right.
func RenderStatusBar(width int, kind, message, hints string) string {
	t := theme.Active

	bg := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var msgColor lipgloss.Color
	var marker string
	switch kind {
	case "success":
		msgColor, marker = t.GreenBright, "✓"
	case "info":
		msgColor, marker = t.BlueBright, "•"
	case "error":
		msgColor, marker = t.Red, "✗"
	default:
		msgColor = t.TextMuted
	}
	msgStyle := lipgloss.NewStyle().Foreground(msgColor).Background(t.Surface).Bold(kind == "error")

	left := bg.Render(" ")
	if message != "" {
		if marker != "" {
			left += msgStyle.Render(marker + " ")
		}
		left += msgStyle.Render(message)
	}
	right := hintStyle.Render(hints + " ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Message wins over hints on narrow terminals.
		right = ""
		padding = width - lipgloss.Width(left)
		if padding < 0 {
			padding = 0
		}
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(left + bg.Render(strings.Repeat(" ", padding)) + right)
}
