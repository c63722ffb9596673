package fincalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SISDRUG/bankoffice/internal/gateway"
)

func TestRatesFromCurrencies(t *testing.T) {
	rates := RatesFromCurrencies([]gateway.Currency{
		{Abbreviation: "USD", Rate: 92.5},
		{Abbreviation: "EUR", Rate: 100.1},
		{Abbreviation: "", Rate: 5},  // skipped: no abbreviation
		{Abbreviation: "XXX"},        // skipped: no rate
	})

	assert.Equal(t, 92.5, rates["USD"])
	assert.Equal(t, 100.1, rates["EUR"])
	assert.Equal(t, 1.0, rates[BaseCurrency], "base currency pinned at 1")
	assert.NotContains(t, rates, "XXX")
	assert.NotContains(t, rates, "")
}

func TestRatesFromCurrencies_BaseProvided(t *testing.T) {
	rates := RatesFromCurrencies([]gateway.Currency{
		{Abbreviation: BaseCurrency, Rate: 1},
		{Abbreviation: "USD", Rate: 92.5},
	})
	assert.Equal(t, 1.0, rates[BaseCurrency])
}

func TestConvert_CrossRate(t *testing.T) {
	rates := Rates{"USD": 92.5, "EUR": 100.1, BaseCurrency: 1}

	// USD -> base.
	got, err := Convert(10, "USD", BaseCurrency, rates)
	require.NoError(t, err)
	assert.InDelta(t, 925.0, got, 1e-9)

	// USD -> EUR through the base currency.
	got, err = Convert(100, "USD", "EUR", rates)
	require.NoError(t, err)
	assert.InDelta(t, 100*92.5/100.1, got, 1e-9)
}

func TestConvert_Errors(t *testing.T) {
	rates := Rates{"USD": 92.5}

	_, err := Convert(0, "USD", "USD", rates)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Convert(10, "GBP", "USD", rates)
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	_, err = Convert(10, "USD", "GBP", rates)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}
