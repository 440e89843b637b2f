// Package money holds the presentation-time rounding and formatting for currency values.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// RoundCents rounds v to two decimal places, halves away from zero.
func RoundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Format renders v as a dollar amount with thousands separators, e.g. "$1,234.50".
func Format(v float64) string {
	r := RoundCents(v)
	if r < 0 {
		return printer.Sprintf("-$%.2f", -r)
	}
	return printer.Sprintf("$%.2f", r)
}
