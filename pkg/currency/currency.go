// Package currency renders UGX amounts for user-visible notifications,
// with thousands separators ("UGX 1,249,500").
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// UGX formats an amount as whole shillings with separators. Fractions are
// rounded away; UGX has no commonly used subunit.
func UGX(amount decimal.Decimal) string {
	return printer.Sprintf("UGX %d", amount.Round(0).IntPart())
}
