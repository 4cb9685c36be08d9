package components

import (
	"strings"

	"github.com/theirongolddev/ladder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders 0-1 fractions as unicode blocks, one per value.
// Unlike a relative sparkline the scale is absolute: 1 is always a full block.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(clamp01(v)*float64(len(blocks)-1) + 0.5)
		if v > 0 && idx == 0 {
			idx = 1
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}
