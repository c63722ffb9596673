package fincalc

import (
	"errors"
	"fmt"

	"github.com/SISDRUG/bankoffice/internal/gateway"
)

// BaseCurrency is the currency the rate table is quoted against.
const BaseCurrency = "RUB"

var ErrUnknownCurrency = errors.New("unknown currency")

// Rates maps a currency abbreviation to its rate against the base currency.
type Rates map[string]float64

// RatesFromCurrencies builds a rate table from the gateway currency list.
// Rows without an abbreviation or a rate are skipped; the base currency is
// pinned at 1 when the table does not include it.
func RatesFromCurrencies(currencies []gateway.Currency) Rates {
	rates := make(Rates, len(currencies)+1)
	for _, c := range currencies {
		if c.Abbreviation == "" || c.Rate == 0 {
			continue
		}
		rates[c.Abbreviation] = c.Rate
	}
	if _, ok := rates[BaseCurrency]; !ok {
		rates[BaseCurrency] = 1
	}
	return rates
}

// Convert converts amount from one currency to another through the base
// currency cross-rate.
func Convert(amount float64, from, to string, rates Rates) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	fromRate, ok := rates[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}
	toRate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}
	return amount * fromRate / toRate, nil
}
