package main

import "github.com/Rhymond/go-money"

// displayAmount formats a raw API float for display in the configured
// currency. The API speaks floats; money formatting is display-only.
func displayAmount(v float64, currency string) string {
	if currency == "" {
		currency = defaultCurrency
	}
	return money.NewFromFloat(v, currency).Display()
}
