// Package tui provides the interactive Bubble Tea front end for ladder.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/ladder/internal/challenge"
	"github.com/theirongolddev/ladder/internal/cli"
	"github.com/theirongolddev/ladder/internal/config"
	"github.com/theirongolddev/ladder/internal/tui/components"
	"github.com/theirongolddev/ladder/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	tabDashboard = iota
	tabGrid
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 160
	minContentHeight = 5
	largestShown     = 5
)

// statusExpiredMsg fires when the status shown at generation gen has
// been up for the configured TTL.
type statusExpiredMsg struct {
	gen uint64
}

// App is the root Bubble Tea model.
type App struct {
	ctrl    *challenge.Controller
	money   *cli.MoneyFormatter
	cfg     config.Config
	cfgPath string
	log     zerolog.Logger

	// darkTheme is the dark theme the light/dark toggle returns to.
	darkTheme string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Liquidity entry
	injecting bool
	amountIn  textinput.Model

	// Horizon selection and confirmation (huh forms)
	horizon *horizonFlow

	grid     gridState
	settings settingsState
}

// NewApp creates the TUI model around a fresh challenge built from cfg.
func NewApp(cfg config.Config, log zerolog.Logger) (App, error) {
	p, err := challenge.NewPortfolio(cfg.General.Label, cfg.General.DefaultHorizon)
	if err != nil {
		return App{}, fmt.Errorf("creating challenge: %w", err)
	}

	money := cli.NewMoneyFormatter(cfg.General.Currency)
	mf := &money
	ctrl := challenge.NewController(p, challenge.Options{
		StatusTTL: cfg.StatusTTL(),
		// Reads through mf so a currency change in settings applies.
		Format: func(d decimal.Decimal) string { return mf.Format(d) },
		Logger: log,
	})

	darkTheme := cfg.Appearance.Theme
	if !theme.ByName(darkTheme).Dark {
		darkTheme = theme.FlexokiDark.Name
	}

	return App{
		ctrl:      ctrl,
		money:     mf,
		cfg:       cfg,
		cfgPath:   config.Path(),
		log:       log,
		darkTheme: darkTheme,
		amountIn:  newAmountInput(),
		grid:      gridState{cursor: 1},
	}, nil
}

// WithConfigPath sets the file the settings tab saves to.
func (a App) WithConfigPath(path string) App {
	a.cfgPath = path
	return a
}

func newAmountInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "0,00"
	ti.CharLimit = 20
	ti.Width = 20
	ti.Prompt = "› "
	return ti
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// expireStatus schedules the clear of the status set most recently.
func (a App) expireStatus() tea.Cmd {
	board := a.ctrl.Status()
	gen := board.Generation()
	return tea.Tick(board.TTL(), func(time.Time) tea.Msg {
		return statusExpiredMsg{gen: gen}
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.horizon != nil {
			a.horizon.form = a.horizon.form.WithWidth(a.formWidth())
		}
		return a, nil

	case statusExpiredMsg:
		a.ctrl.Status().Clear(msg.gen)
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.horizon != nil || a.injecting || a.settings.editing {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward everything else (cursor blink, form internals) to the active widget.
	if a.horizon != nil {
		return a.updateHorizonForm(msg)
	}
	if a.injecting {
		var cmd tea.Cmd
		a.amountIn, cmd = a.amountIn.Update(msg)
		return a, cmd
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// Modal widgets take every key while open.
	if a.horizon != nil {
		if key == "esc" {
			a.horizon = nil
			return a, nil
		}
		return a.updateHorizonForm(msg)
	}
	if a.injecting {
		return a.updateAmountInput(msg)
	}
	if a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if a.activeTab == tabGrid {
		if m, cmd, handled := a.updateGridKey(key); handled {
			return m, cmd
		}
	}
	if a.activeTab == tabSettings {
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "i":
		a.injecting = true
		a.amountIn = newAmountInput()
		return a, a.amountIn.Focus()
	case "a":
		_, _ = a.ctrl.FundRecommended()
		return a, a.expireStatus()
	case "H":
		return a.startHorizonFlow()
	case "t":
		theme.Toggle(a.darkTheme)
		return a, nil
	case "tab", "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case "shift+tab", "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	default:
		if len(key) == 1 {
			if tab := components.TabIdxByKey(rune(key[0])); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateAmountInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := a.amountIn.Value()
		a.injecting = false
		a.amountIn.Blur()
		_ = a.ctrl.InjectLiquidity(raw)
		return a, a.expireStatus()
	case "esc":
		a.injecting = false
		a.amountIn.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.amountIn, cmd = a.amountIn.Update(msg)
	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.horizon != nil {
		return a.viewHorizonForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  ladder needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"d g x", "Jump to tab"},
			{"tab ←→", "Next / previous tab"},
			{"hjkl ↑↓", "Move the grid cursor"},
		}},
		{"Challenge", []struct{ key, desc string }{
			{"i", "Inject liquidity"},
			{"a", "Fund the recommended slot"},
			{"Enter", "Toggle slot under cursor"},
			{"H", "Change horizon"},
		}},
		{"General", []struct{ key, desc string }{
			{"t", "Toggle light / dark"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderHeader(w int) string {
	t := theme.Active
	p := a.ctrl.Portfolio()

	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	logo := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)

	info := logo.Render(" ◈ ladder") +
		dim.Render(" │ ID ") + accent.Render(strings.ToUpper(p.Label())) +
		dim.Render(" │ horizon ") + accent.Render(fmt.Sprintf("%d units", p.Horizon())) +
		dim.Render(" │ goal ") + accent.Render(a.money.FormatUnits(p.AggregateGoal()))

	row := lipgloss.PlaceHorizontal(w, lipgloss.Left, lipgloss.NewStyle().MaxWidth(w).Render(info),
		lipgloss.WithWhitespaceBackground(t.Surface))
	return components.RenderTabBar(a.activeTab, w) + "\n" + row
}

func (a App) statusHints() string {
	switch {
	case a.injecting:
		return "[Enter] confirm  [Esc] cancel"
	case a.settings.editing:
		return "[Enter] save  [Esc] cancel"
	case a.activeTab == tabGrid:
		return "[Enter] toggle  [i] inject  [H] horizon  [?] help"
	default:
		return "[i] inject  [a] fund  [H] horizon  [t] theme  [?] help  [q] quit"
	}
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := a.renderHeader(w)

	st := a.ctrl.Status().Current()
	statusBar := components.RenderStatusBar(w, st.Kind.String(), st.Message, a.statusHints())

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabGrid:
		content = a.renderGridTab(cw, contentH)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
