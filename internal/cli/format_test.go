package cli

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{2345.67, "USD", "$2,345.67"},
		{0, "USD", "$0.00"},
		{999.5, "EUR", "€999.50"},
		{1234567.89, "GBP", "£1,234,567.89"},
		{-42.5, "USD", "-$42.50"},
		{100, "XXX", "$100.00"}, // unknown code falls back to $
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.amount, tc.code); got != tc.want {
			t.Errorf("FormatCurrency(%v, %q) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestFormatCompactCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{950, "$950.00"},
		{1500, "$1.5K"},
		{1250, "$1.3K"}, // halves round away from zero
		{12500, "$13K"}, // not banker's "$12K"
		{1500000, "$1.50M"},
		{10500000, "$10.5M"},
		{25000000, "$25.0M"},
	}
	for _, tc := range cases {
		if got := FormatCompactCurrency(tc.amount, "USD"); got != tc.want {
			t.Errorf("FormatCompactCurrency(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0.5, "30 minutes"},
		{0.0166, "1 minute"},
		{1, "1.0 hour"},
		{3.78, "3.8 hours"},
		{40, "40.0 hours"},
	}
	for _, tc := range cases {
		if got := FormatHours(tc.hours); got != tc.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tc.hours, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.n); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestNumberInputRoundTrip(t *testing.T) {
	values := []float64{0, 1, 999.99, 2345.67, 1000000, 52000.5}
	for _, x := range values {
		formatted := FormatNumberInput(x)
		parsed, err := ParseNumberInput(formatted)
		if err != nil {
			t.Fatalf("ParseNumberInput(%q): %v", formatted, err)
		}
		if parsed != x {
			t.Errorf("round trip %v -> %q -> %v", x, formatted, parsed)
		}
	}
}

func TestFormatNumberInput(t *testing.T) {
	if got := FormatNumberInput(2345.67); got != "2,345.67" {
		t.Errorf("FormatNumberInput(2345.67) = %q, want 2,345.67", got)
	}
}

func TestParseNumberInput_Invalid(t *testing.T) {
	for _, s := range []string{"", "  ", "abc", "12..3", "NaN"} {
		if _, err := ParseNumberInput(s); err == nil {
			t.Errorf("ParseNumberInput(%q) expected error", s)
		}
	}
}

func TestParseNumberInput_AcceptsPlainNumbers(t *testing.T) {
	got, err := ParseNumberInput("1234.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1234.5 {
		t.Errorf("ParseNumberInput(1234.5) = %v, want 1234.5", got)
	}
}
