// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/saveup-app/saveup/internal/currency"
)

// ErrNotANumber is returned by ParseNumberInput for unparseable input.
var ErrNotANumber = errors.New("cli: not a number")

// FormatCurrency formats an amount with the currency's symbol, comma
// grouping and two decimals. e.g., 2345.67, "USD" -> "$2,345.67"
func FormatCurrency(amount float64, code string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + currency.Symbol(code) + groupedFixed(amount)
}

// FormatCompactCurrency formats large amounts with K/M suffixes.
// e.g., 1_500_000 -> "$1.50M", 12_500 -> "$13K", 950 -> "$950.00"
func FormatCompactCurrency(amount float64, code string) string {
	symbol := currency.Symbol(code)
	abs := math.Abs(amount)

	switch {
	case abs >= 1_000_000:
		millions := amount / 1_000_000
		if millions >= 10 {
			return symbol + fixedAwayFromZero(millions, 1) + "M"
		}
		return symbol + fixedAwayFromZero(millions, 2) + "M"
	case abs >= 1_000:
		thousands := amount / 1_000
		if thousands >= 10 {
			return symbol + fixedAwayFromZero(thousands, 0) + "K"
		}
		return symbol + fixedAwayFromZero(thousands, 1) + "K"
	default:
		return FormatCurrency(amount, code)
	}
}

// fixedAwayFromZero renders v with the given number of decimals, rounding
// halves away from zero. Plain %f formatting rounds halves to even, which
// would turn 12.5K into "$12K" instead of "$13K".
func fixedAwayFromZero(v float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', decimals, 64)
}

// FormatHours formats work hours for display. Fractions of an hour render
// as minutes. e.g., 0.5 -> "30 minutes", 3.78 -> "3.8 hours"
func FormatHours(hours float64) string {
	if hours < 1 {
		minutes := int(math.Round(hours * 60))
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	if hours == 1 {
		return "1.0 hour"
	}
	return fmt.Sprintf("%.1f hours", hours)
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

// FormatNumberInput renders a value the way a numeric text field displays
// it: comma-grouped with two decimals. e.g., 2345.67 -> "2,345.67"
func FormatNumberInput(x float64) string {
	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}
	return sign + groupedFixed(x)
}

// ParseNumberInput parses comma-grouped numeric input back to a value.
// ParseNumberInput(FormatNumberInput(x)) == x for 2-decimal values.
func ParseNumberInput(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, ErrNotANumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotANumber
	}
	return v, nil
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// groupedFixed renders a non-negative value with two decimals and comma
// grouping on the integer part.
func groupedFixed(v float64) string {
	fixed := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.IndexByte(fixed, '.')
	intPart, fracPart := fixed[:dot], fixed[dot:]

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// Integer part exceeds int64 range; leave it ungrouped.
		return fixed
	}
	return FormatNumber(n) + fracPart
}
