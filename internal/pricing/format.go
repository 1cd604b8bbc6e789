package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

const currencySymbol = "€"

// FormatAmount renders d with two fractional digits and a decimal comma,
// whatever the locale of the host.
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// FormatEuro is FormatAmount followed directly by the euro sign.
func FormatEuro(d decimal.Decimal) string {
	return FormatAmount(d) + currencySymbol
}

// FormatDeposit renders the deposit line text.
func FormatDeposit(d decimal.Decimal) string {
	return "Zzgl.: " + FormatEuro(d) + " Pfand"
}
