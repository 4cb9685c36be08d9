package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/ladder/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowBackgroundFill(t *testing.T) {
	// Initialize theme
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))

	t.Logf("Short card lines: %d", shortLines)
	t.Logf("Tall card lines: %d", tallLines)

	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	// Test the fixed CardRow
	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	t.Logf("Joined lines: %d", len(lines))

	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}

	// Check that all lines have ANSI codes (indicating background styling)
	for i, line := range lines {
		hasESC := strings.Contains(line, "\x1b[")
		// After the short card ends, the padding should still have ANSI codes
		if i >= shortLines {
			t.Logf("Line %d (padding): hasANSI=%v, raw=%q", i, hasESC, line)
			if !hasESC {
				t.Errorf("Line %d has NO ANSI codes - will show as black squares", i)
			}
		}
	}
}

func TestCardRowWidthConsistency(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "A", 30)
	tallCard := ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20)

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	for i, line := range lines {
		if w := lipgloss.Width(line); w != 50 {
			t.Errorf("Line %d: width %d, want 50", i, w)
		}
	}

	tallLines := len(strings.Split(tallCard, "\n"))
	if len(lines) != tallLines {
		t.Errorf("Joined should have %d lines (tallest), got %d", tallLines, len(lines))
	}
}

func TestMetricCardRowSumsToWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Liquidity", Value: "R$10,00"},
		{Label: "Consolidated", Value: "R$55,00", Note: "goal R$20.100,00"},
		{Label: "Completion", Value: "5.0%"},
	}, 91)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 91 {
			t.Errorf("Line %d: width %d, want 91", i, w)
		}
	}
}

func TestLayoutRow(t *testing.T) {
	got := LayoutRow(10, 3)
	want := []int{4, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LayoutRow(10, 3) = %v, want %v", got, want)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}
