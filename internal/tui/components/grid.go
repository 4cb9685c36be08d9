package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/ladder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// CellState is how a grid cell is drawn.
type CellState int

const (
	CellLocked     CellState = iota // unfunded and not affordable
	CellAffordable                  // unfunded, liquidity covers it
	CellFunded
)

// GridSpec describes a position grid of units 1..Units.
type GridSpec struct {
	Units   int
	Cols    int
	Cursor  int // highlighted unit, 0 for none
	FromRow int // first visible row
	Rows    int // visible rows, 0 for all
	State   func(unit int) CellState
}

// GridCellWidth is the width of one cell for a grid of n units.
func GridCellWidth(n int) int {
	return len(strconv.Itoa(n)) + 2
}

// GridCols returns how many cells fit in width, at least 1.
func GridCols(width, units int) int {
	c := width / GridCellWidth(units)
	if c < 1 {
		c = 1
	}
	return c
}

// GridRowOf returns the zero-based row holding unit.
func GridRowOf(unit, cols int) int {
	if unit < 1 || cols < 1 {
		return 0
	}
	return (unit - 1) / cols
}

// GridRowCount is the number of rows a grid of units needs.
func GridRowCount(units, cols int) int {
	if cols < 1 {
		return 0
	}
	return (units + cols - 1) / cols
}

// RenderGrid draws the visible rows of the grid.
func RenderGrid(g GridSpec) string {
	t := theme.Active
	if g.Units < 1 || g.Cols < 1 {
		return ""
	}

	cellW := GridCellWidth(g.Units)

	lockedStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	openStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover)
	fundedStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Yellow).Bold(true)
	gapStyle := lipgloss.NewStyle().Background(t.Surface)

	totalRows := GridRowCount(g.Units, g.Cols)
	last := totalRows
	if g.Rows > 0 && g.FromRow+g.Rows < last {
		last = g.FromRow + g.Rows
	}

	var b strings.Builder
	for row := g.FromRow; row < last; row++ {
		if row > g.FromRow {
			b.WriteString("\n")
		}
		for col := 0; col < g.Cols; col++ {
			unit := row*g.Cols + col + 1
			if unit > g.Units {
				break
			}
			label := fmt.Sprintf("%*d ", cellW-1, unit)

			var style lipgloss.Style
			switch {
			case unit == g.Cursor:
				style = cursorStyle
			case g.State == nil:
				style = lockedStyle
			default:
				switch g.State(unit) {
				case CellFunded:
					style = fundedStyle
				case CellAffordable:
					style = openStyle
				default:
					style = lockedStyle
				}
			}
			b.WriteString(style.Render(label))
		}
		if row == last-1 && (row+1)*g.Cols > g.Units {
			remaining := (row+1)*g.Cols - g.Units
			b.WriteString(gapStyle.Render(strings.Repeat(" ", remaining*cellW)))
		}
	}
	return b.String()
}
