package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ladder/internal/tui/components"
	"github.com/theirongolddev/ladder/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerLines    = 2 // tab bar + info row
	statusBarLines = 1
	gridChrome     = 5 // card border, title, blank line, legend
	injectCardH    = 5
)

// gridState tracks the position grid cursor and scroll.
type gridState struct {
	cursor  int // unit under the cursor, 1-based
	fromRow int // first visible row
}

// gridViewport returns the column count and visible row count of the grid.
func (a App) gridViewport() (cols, rows int) {
	h := a.ctrl.Portfolio().Horizon()
	cols = components.GridCols(components.CardInnerWidth(a.contentWidth()), h)

	rows = a.height - headerLines - statusBarLines - gridChrome
	if a.injecting {
		rows -= injectCardH
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// clampGrid keeps the cursor inside the horizon and its row on screen.
func (a *App) clampGrid() {
	h := a.ctrl.Portfolio().Horizon()
	if a.grid.cursor < 1 {
		a.grid.cursor = 1
	}
	if a.grid.cursor > h {
		a.grid.cursor = h
	}

	cols, rows := a.gridViewport()
	row := components.GridRowOf(a.grid.cursor, cols)
	if row < a.grid.fromRow {
		a.grid.fromRow = row
	}
	if row >= a.grid.fromRow+rows {
		a.grid.fromRow = row - rows + 1
	}
	if maxFrom := components.GridRowCount(h, cols) - rows; a.grid.fromRow > maxFrom {
		a.grid.fromRow = maxFrom
	}
	if a.grid.fromRow < 0 {
		a.grid.fromRow = 0
	}
}

// updateGridKey handles grid navigation. handled is false for keys the
// grid does not own.
func (a App) updateGridKey(key string) (m tea.Model, cmd tea.Cmd, handled bool) {
	cols, rows := a.gridViewport()
	h := a.ctrl.Portfolio().Horizon()

	switch key {
	case "h", "left":
		a.grid.cursor--
	case "l", "right":
		a.grid.cursor++
	case "k", "up":
		if a.grid.cursor-cols >= 1 {
			a.grid.cursor -= cols
		}
	case "j", "down":
		if a.grid.cursor+cols <= h {
			a.grid.cursor += cols
		}
	case "pgup":
		a.grid.cursor -= cols * rows
	case "pgdown":
		a.grid.cursor += cols * rows
	case "home", "g":
		a.grid.cursor = 1
	case "end", "G":
		a.grid.cursor = h
	case "enter", " ":
		_ = a.ctrl.ToggleAllocation(a.grid.cursor)
		return a, a.expireStatus(), true
	default:
		return a, nil, false
	}

	a.clampGrid()
	return a, nil, true
}

func (a App) renderGridTab(cw, contentH int) string {
	t := theme.Active
	p := a.ctrl.Portfolio()

	a.clampGrid()
	cols, rows := a.gridViewport()

	grid := components.RenderGrid(components.GridSpec{
		Units:   p.Horizon(),
		Cols:    cols,
		Cursor:  a.grid.cursor,
		FromRow: a.grid.fromRow,
		Rows:    rows,
		State: func(unit int) components.CellState {
			switch {
			case p.IsFunded(unit):
				return components.CellFunded
			case p.CanAfford(unit):
				return components.CellAffordable
			default:
				return components.CellLocked
			}
		},
	})

	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	funded := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent)
	open := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover)
	locked := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	cursor := lipgloss.NewStyle().Foreground(t.Background).Background(t.Yellow)

	sel := a.grid.cursor
	state := "open"
	switch {
	case p.IsFunded(sel):
		state = "funded"
	case !p.CanAfford(sel):
		state = "needs liquidity"
	}

	legend := funded.Render(" funded ") + dim.Render(" ") +
		open.Render(" affordable ") + dim.Render(" ") +
		locked.Render(" locked ") + dim.Render(" ") +
		cursor.Render(" cursor ") +
		dim.Render(fmt.Sprintf("   slot %d · %s · %s", sel, a.money.FormatUnits(int64(sel)), state))

	title := fmt.Sprintf("Positions 1-%d · %d funded", p.Horizon(), p.FundedCount())

	var b strings.Builder
	if a.injecting {
		b.WriteString(components.ContentCard("Inject liquidity", a.renderAmountInput(), cw))
		b.WriteString("\n")
	}
	b.WriteString(components.ContentCard(title, grid+"\n\n"+legend, cw))

	return truncateHeight(b.String(), contentH)
}
