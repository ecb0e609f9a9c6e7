// Package format provides pure helpers for presenting invoice values in
// notification emails: currency amounts formatted for the en-US locale and
// long-form dates.
//
// Functions here are deterministic and have no side effects.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/allisson/invoices/internal/invoice/domain"
)

// Amount formats a monetary amount using the en-US pattern for the given
// currency: symbol, thousands grouping and two decimal places.
// Amount(domain.CurrencyUSD, 1234.5) == "$1,234.50".
func Amount(currency domain.Currency, amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	fixed := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return sign + currency.Symbol() + groupThousands(intPart) + "." + fracPart
}

// LongDate formats a date in en-US long form: "January 15, 2024".
func LongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// groupThousands inserts comma separators into a digit string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	first := len(digits) % 3
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
