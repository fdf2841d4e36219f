// Package report renders round results for people: grouped dollars, signed
// profits and two-decimal percentages.
package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// cents rounds half away from zero to two decimals.
func cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Currency formats v as "$30,000.00". Negative values render as "-$1,500.00".
func Currency(v float64) string {
	d := cents(v)
	if d.IsNegative() {
		return "-" + printer.Sprintf("$%.2f", d.Neg().InexactFloat64())
	}
	return printer.Sprintf("$%.2f", d.InexactFloat64())
}

// SignedCurrency always carries a sign: "+$10,500.00", "-$1,500.00", "$0.00".
func SignedCurrency(v float64) string {
	d := cents(v)
	if d.IsPositive() {
		return "+" + Currency(v)
	}
	return Currency(v)
}

// Percent formats a value already expressed in percent: 14.2857 -> "14.29%".
func Percent(v float64) string {
	return cents(v).StringFixed(2) + "%"
}

// Units formats an integer count with thousands separators.
func Units(n int) string {
	return printer.Sprintf("%d", n)
}
