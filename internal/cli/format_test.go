package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{266815, "266,815"},
		{-1234567, "-1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMoneyFormatterBRL(t *testing.T) {
	f := NewMoneyFormatter("BRL")

	got := f.Format(decimal.RequireFromString("1234.5"))
	if !strings.Contains(got, "1.234,50") {
		t.Fatalf("Format(1234.5) = %q, want pt-BR separators", got)
	}
	if !strings.Contains(got, "R$") {
		t.Fatalf("Format(1234.5) = %q, want R$ grapheme", got)
	}
	if got := f.FormatUnits(330); !strings.Contains(got, "330,00") {
		t.Fatalf("FormatUnits(330) = %q", got)
	}
}

func TestMoneyFormatterUnknownFallsBack(t *testing.T) {
	f := NewMoneyFormatter("NOPE")
	if f.Code() != "BRL" {
		t.Fatalf("Code() = %q, want BRL", f.Code())
	}
}

func TestMoneyFormatterRoundsToCurrencyFraction(t *testing.T) {
	f := NewMoneyFormatter("USD")
	if got := f.Format(decimal.RequireFromString("0.005")); !strings.Contains(got, "0.01") {
		t.Fatalf("Format(0.005) = %q, want rounding to cents", got)
	}
}

func TestMoneyFormatterBeyondInt64(t *testing.T) {
	f := NewMoneyFormatter("BRL")

	tests := []struct {
		in   string
		want string
	}{
		{"1e17", "R$100.000.000.000.000.000,00"},
		{"92233720368547758.08", "R$92.233.720.368.547.758,08"},
		{"1e19", "R$10.000.000.000.000.000.000,00"},
		{"-1e17", "-R$100.000.000.000.000.000,00"},
		{"92233720368547758.07", "R$92.233.720.368.547.758,07"}, // int64 max, go-money path
	}
	for _, tt := range tests {
		if got := f.Format(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("Format(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}

	usd := NewMoneyFormatter("USD")
	if got := usd.Format(decimal.RequireFromString("1e17")); got != "$100,000,000,000,000,000.00" {
		t.Errorf("USD Format(1e17) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(12.345); got != "12.3%" {
		t.Fatalf("FormatPercent = %q", got)
	}
}

func TestFormatUnitList(t *testing.T) {
	if got := FormatUnitList(nil, 3); got != "-" {
		t.Fatalf("empty list = %q", got)
	}
	if got := FormatUnitList([]int{1, 2, 3, 4}, 3); got != "1, 2, 3 (+1)" {
		t.Fatalf("truncated list = %q", got)
	}
	if got := FormatUnitList([]int{5, 9}, 0); got != "5, 9" {
		t.Fatalf("unlimited list = %q", got)
	}
}
