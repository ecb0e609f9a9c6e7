package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusPaid.Valid())
	assert.False(t, Status("DRAFT").Valid())
	assert.False(t, Status("paid").Valid())
	assert.False(t, Status("").Valid())
}

func TestCurrencyValid(t *testing.T) {
	assert.True(t, CurrencyUSD.Valid())
	assert.True(t, CurrencyEUR.Valid())
	assert.False(t, Currency("BRL").Valid())
	assert.False(t, Currency("usd").Valid())
	assert.False(t, Currency("").Valid())
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencyUSD.Symbol())
	assert.Equal(t, "€", CurrencyEUR.Symbol())
}
