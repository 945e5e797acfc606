package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Prices travel as plain JSON numbers ({"price": 14.9}), matching the
// catalog document layout stored in the blob bucket.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// FormatBRL renders an amount as "R$ 48,70": comma decimal separator,
// always two decimals, no thousands separator.
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + strings.Replace(amount.StringFixed(2), ".", ",", 1)
}
