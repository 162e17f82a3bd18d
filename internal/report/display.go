package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// All amounts are displayed in a single currency with Indian digit
// grouping, matching the web frontend.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatAmount renders a monetary value for display, with two decimal
// places and the currency symbol.
//
// This is presentation only. The float conversion never feeds back
// into any stored or aggregated value.
func FormatAmount(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return printer.Sprintf("₹%v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
