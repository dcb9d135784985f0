package html

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// Number formats n with Korean digit grouping (1,234).
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// Decimal formats d with two fraction digits and digit grouping.
func Decimal(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.InexactFloat64())
}
