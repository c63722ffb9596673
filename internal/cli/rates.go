package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/SISDRUG/bankoffice/internal/fincalc"
)

func (a *App) Rates(ctx context.Context) {
	currencies, err := a.gw.ListCurrencies(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(currencies) == 0 {
		printlnFn("No rates")
		return
	}
	fmt.Printf("Rates against %s:\n", fincalc.BaseCurrency)
	for _, c := range currencies {
		if c.Abbreviation == "" {
			continue
		}
		fmt.Printf("  %-5s %10.4f  %s\n", c.Abbreviation, c.Rate, c.Name)
	}
}

func (a *App) ConvertCurrency(ctx context.Context) {
	currencies, err := a.gw.ListCurrencies(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	rates := fincalc.RatesFromCurrencies(currencies)

	amount, err := GetFloat(a.reader, "Amount", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	from, err := getSimpleText(a.reader, "From currency (e.g. USD)", osStdout)
	if err != nil {
		return
	}
	to, err := getSimpleText(a.reader, "To currency (e.g. EUR)", osStdout)
	if err != nil {
		return
	}

	result, err := fincalc.Convert(amount, strings.ToUpper(from), strings.ToUpper(to), rates)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("%.2f %s = %.2f %s\n", amount, strings.ToUpper(from), result, strings.ToUpper(to))
}
