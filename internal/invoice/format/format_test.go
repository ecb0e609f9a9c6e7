package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/invoices/internal/invoice/domain"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		currency domain.Currency
		amount   float64
		expected string
	}{
		{"usd whole", domain.CurrencyUSD, 100, "$100.00"},
		{"usd cents", domain.CurrencyUSD, 49.9, "$49.90"},
		{"usd thousands", domain.CurrencyUSD, 1234.5, "$1,234.50"},
		{"usd millions", domain.CurrencyUSD, 1234567.89, "$1,234,567.89"},
		{"eur", domain.CurrencyEUR, 100, "€100.00"},
		{"zero", domain.CurrencyUSD, 0, "$0.00"},
		{"negative", domain.CurrencyUSD, -42.5, "-$42.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Amount(tt.currency, tt.amount))
		})
	}
}

func TestLongDate(t *testing.T) {
	assert.Equal(
		t,
		"January 15, 2024",
		LongDate(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)),
	)
	assert.Equal(
		t,
		"December 1, 2025",
		LongDate(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)),
	)
}
