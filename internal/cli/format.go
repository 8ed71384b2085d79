// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/model"
)

// FormatMoney formats an amount as a dollar string with comma separators.
// e.g., 1234.5 -> "$1,234.50"
func FormatMoney(d decimal.Decimal) string {
	if d.Sign() < 0 {
		return "-" + FormatMoney(d.Neg())
	}

	s := d.StringFixed(2)
	dot := strings.IndexByte(s, '.')
	return "$" + groupDigits(s[:dot]) + s[dot:]
}

// FormatSignedMoney formats an amount with an explicit leading sign.
// e.g., 1380 -> "+$1,380.00", -20 -> "-$20.00"
func FormatSignedMoney(d decimal.Decimal) string {
	if d.Sign() < 0 {
		return "-" + FormatMoney(d.Neg())
	}
	return "+" + FormatMoney(d)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupDigits(strconv.FormatInt(n, 10))
}

func groupDigits(s string) string {
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

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

// FormatDaysLeft describes the days remaining until a deadline.
func FormatDaysLeft(days int) string {
	switch {
	case days > 0:
		return fmt.Sprintf("%dd left", days)
	case days == 0:
		return "due today"
	default:
		return fmt.Sprintf("%dd overdue", -days)
	}
}
