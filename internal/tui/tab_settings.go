package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/ladder/internal/challenge"
	"github.com/theirongolddev/ladder/internal/cli"
	"github.com/theirongolddev/ladder/internal/config"
	"github.com/theirongolddev/ladder/internal/logging"
	"github.com/theirongolddev/ladder/internal/tui/components"
	"github.com/theirongolddev/ladder/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldLabel = iota
	settingsFieldTheme
	settingsFieldCurrency
	settingsFieldHorizon
	settingsFieldStatusTTL
	settingsFieldLogLevel
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message
	saveErr error // last save or validation failure
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false
	a.settings.saveErr = nil

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldLabel:
		ti.Placeholder = "Asset Manager"
		ti.SetValue(a.cfg.General.Label)
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldCurrency:
		ti.Placeholder = "BRL, USD, EUR..."
		ti.SetValue(a.cfg.General.Currency)
	case settingsFieldHorizon:
		ti.Placeholder = horizonChoices()
		ti.SetValue(strconv.Itoa(a.cfg.General.DefaultHorizon))
	case settingsFieldStatusTTL:
		ti.Placeholder = "4000 (milliseconds)"
		ti.SetValue(strconv.Itoa(a.cfg.Status.TTLMillis))
	case settingsFieldLogLevel:
		ti.Placeholder = "debug, info, warn, error, off"
		ti.SetValue(a.cfg.Log.Level)
	}

	a.settings.input = ti
	return a, a.settings.input.Focus()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave validates the edited field and writes the config file.
// Theme and currency apply immediately; the rest take effect on the next
// challenge since the running one only changes through its operations.
func (a *App) settingsSave() {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldLabel:
		if val == "" {
			a.settings.saveErr = fmt.Errorf("label cannot be empty")
			return
		}
		cfg.General.Label = val
	case settingsFieldTheme:
		if theme.ByName(val).Name != val {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return
		}
		cfg.Appearance.Theme = val
	case settingsFieldCurrency:
		cfg.General.Currency = strings.ToUpper(val)
	case settingsFieldHorizon:
		n, err := strconv.Atoi(val)
		if err != nil {
			a.settings.saveErr = fmt.Errorf("horizon %q: not a number", val)
			return
		}
		cfg.General.DefaultHorizon = n
	case settingsFieldStatusTTL:
		n, err := strconv.Atoi(val)
		if err != nil {
			a.settings.saveErr = fmt.Errorf("status duration %q: not a number", val)
			return
		}
		cfg.Status.TTLMillis = n
	case settingsFieldLogLevel:
		cfg.Log.Level = strings.ToLower(val)
	}

	if err := cfg.Validate(); err != nil {
		a.settings.saveErr = err
		return
	}

	if err := config.SaveTo(a.cfgPath, cfg); err != nil {
		a.log.Error().Err(err).Str("path", a.cfgPath).Msg("saving settings")
		a.settings.saveErr = err
		return
	}
	a.cfg = cfg

	switch a.settings.cursor {
	case settingsFieldTheme:
		theme.SetActive(cfg.Appearance.Theme)
		if theme.Active.Dark {
			a.darkTheme = cfg.Appearance.Theme
		}
	case settingsFieldCurrency:
		*a.money = cli.NewMoneyFormatter(cfg.General.Currency)
	}
}

func horizonChoices() string {
	opts := challenge.HorizonOptions()
	parts := make([]string, len(opts))
	for i, n := range opts {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	type field struct {
		label string
		value string
		note  string
	}

	fields := []field{
		{"Label", cfg.General.Label, "next challenge"},
		{"Theme", cfg.Appearance.Theme, ""},
		{"Currency", cfg.General.Currency, ""},
		{"Default Horizon", strconv.Itoa(cfg.General.DefaultHorizon), "next challenge"},
		{"Status Duration", fmt.Sprintf("%dms", cfg.Status.TTLMillis), "next challenge"},
		{"Log Level", logging.ParseLevel(cfg.Log.Level).String(), "next start"},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		note := ""
		if f.note != "" {
			note = "  (" + f.note + ")"
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value + note)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			padLen := components.CardInnerWidth(cw) - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
			formBody.WriteString(dimStyle.Render(note))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Not saved: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	p := a.ctrl.Portfolio()
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Challenge ID:  ") + valueStyle.Render(p.ID().String()) + "\n")
	infoBody.WriteString(labelStyle.Render("Horizon:       ") + valueStyle.Render(fmt.Sprintf("%d units", p.Horizon())) + "\n")
	infoBody.WriteString(labelStyle.Render("Funded slots:  ") + valueStyle.Render(cli.FormatUnitList(p.Funded(), 12)) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:   ") + valueStyle.Render(a.cfgPath))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Current challenge", infoBody.String(), cw))

	return b.String()
}
