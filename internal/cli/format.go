// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MoneyFormatter renders amounts in one currency.
type MoneyFormatter struct {
	cur      *money.Currency
	code     string
	fraction int32
}

// NewMoneyFormatter returns a formatter for an ISO 4217 code,
// falling back to BRL for unknown codes.
func NewMoneyFormatter(code string) MoneyFormatter {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(money.BRL)
	}
	return MoneyFormatter{cur: cur, code: cur.Code, fraction: int32(cur.Fraction)}
}

// Code is the currency code in use.
func (f MoneyFormatter) Code() string { return f.code }

// Format renders d with the currency's grapheme and separators,
// e.g. 1234.5 BRL -> "R$1.234,50".
func (f MoneyFormatter) Format(d decimal.Decimal) string {
	minor := d.Shift(f.fraction).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return f.formatLarge(minor)
	}
	return money.New(minor.IntPart(), f.code).Display()
}

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// formatLarge lays out minor units beyond int64 the way go-money does.
func (f MoneyFormatter) formatLarge(minor decimal.Decimal) string {
	cur := f.cur
	if cur == nil {
		cur = money.GetCurrency(money.BRL)
	}
	frac := cur.Fraction

	sa := minor.Abs().String()
	if len(sa) <= frac {
		sa = strings.Repeat("0", frac-len(sa)+1) + sa
	}
	if cur.Thousand != "" {
		for i := len(sa) - frac - 3; i > 0; i -= 3 {
			sa = sa[:i] + cur.Thousand + sa[i:]
		}
	}
	if frac > 0 {
		sa = sa[:len(sa)-frac] + cur.Decimal + sa[len(sa)-frac:]
	}
	sa = strings.Replace(cur.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", cur.Grapheme, 1)

	if minor.IsNegative() {
		sa = "-" + sa
	}
	return sa
}

// FormatUnits renders a whole-unit amount.
func (f MoneyFormatter) FormatUnits(n int64) string {
	return f.Format(decimal.NewFromInt(n))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 rate with one decimal, e.g. 12.5 -> "12.5%".
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// FormatUnitList joins positions for compact display, truncating after limit.
// e.g., [1 2 3 4], 3 -> "1, 2, 3 (+1)"
func FormatUnitList(units []int, limit int) string {
	if len(units) == 0 {
		return "-"
	}
	shown := units
	if limit > 0 && len(units) > limit {
		shown = units[:limit]
	}
	parts := make([]string, len(shown))
	for i, u := range shown {
		parts[i] = strconv.Itoa(u)
	}
	out := strings.Join(parts, ", ")
	if len(shown) < len(units) {
		out += fmt.Sprintf(" (+%d)", len(units)-len(shown))
	}
	return out
}
