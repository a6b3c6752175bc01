package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"1234.5", "R$ 1234,50"},
		{"99.9", "R$ 99,90"},
		{"-3", "R$ -3,00"},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatalf("bad test input %q: %v", tt.in, err)
		}
		if got := FormatBRL(d); got != tt.want {
			t.Errorf("FormatBRL(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmountCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"100", "100,00"},
		{"99.9", "99,90"},
		{"abc", "abc"},
	}

	for _, tt := range tests {
		if got := FormatAmountCell(tt.in); got != tt.want {
			t.Errorf("FormatAmountCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
