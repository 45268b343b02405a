package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1", "1", true},
		{"1.0", "1", true},
		{"12.50", "12.5", true},
		{"0.01", "0.01", true},
		{" 2.50 ", "2.5", true},
		{"-3", "", false},
		{"0", "", false},
		{"0.00", "", false},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"", "", false},
		{"   ", "", false},
		{"1e4", "", false},
		{"1E2", "", false},
		{"1e4000000", "", false},
		{"1000000000000000.01", "", false},
		{"999999999999999.99", "999999999999999.99", true},
		{"0." + strings.Repeat("0", 40) + "1", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || !got.Equal(decimal.RequireFromString(tc.out)) {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("%q expected ErrInvalidAmount, got %v", tc.in, err)
			}
		}
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"7.25", "$7.25"},
		{"12.5", "$12.50"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"-3", "-$3.00"},
		{"0.005", "$0.01"},
		{"999.999", "$1,000.00"},
		{"12345678901234567.89", "$12,345,678,901,234,567.89"},
		{"100000000000000000000000000000", "$100,000,000,000,000,000,000,000,000,000.00"},
	}
	for _, tc := range cases {
		amount := decimal.RequireFromString(tc.in)
		if got := FormatUSD(amount); got != tc.want {
			t.Errorf("FormatUSD(%s) = %q, want %q", tc.in, got, tc.want)
		}
		if amount.String() != decimal.RequireFromString(tc.in).String() {
			t.Errorf("FormatUSD mutated its argument")
		}
	}
}

func TestFormatFixed2(t *testing.T) {
	if got := FormatFixed2(decimal.Zero); got != "0.00" {
		t.Fatalf("zero = %q", got)
	}
	if got := FormatFixed2(decimal.RequireFromString("19.75")); got != "19.75" {
		t.Fatalf("19.75 = %q", got)
	}
	if got := FormatFixed2(decimal.RequireFromString("3.1")); got != "3.10" {
		t.Fatalf("3.1 = %q", got)
	}
}
