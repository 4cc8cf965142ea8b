package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimals money is rendered with.
const MoneyPlaces int32 = 2

// FormatMoney renders an amount with exactly two decimals.
// Example: 12.3 returns "12.30", 33.335 returns "33.34".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPlaces)
}

// FormatPercentage renders a percentage with two decimals.
// Example: 16 returns "16.00".
func FormatPercentage(p decimal.Decimal) string {
	return p.StringFixed(MoneyPlaces)
}
