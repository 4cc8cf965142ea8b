// Package ledger is the expense-settlement engine of a trip. It reduces a list
// of expenses into per-member balances, plans the payments that settle them,
// and allocates equal shares when an expense is created.
//
// Every function here is pure: callers hand in a snapshot of the trip's
// expenses and get freshly allocated results back, so the package is safe for
// concurrent use and needs no locking.
package ledger

import "github.com/shopspring/decimal"

// Places is the number of decimal places money is rounded to.
const Places int32 = 2

// Epsilon is one minor currency unit. Balances within it of zero count as settled.
var Epsilon = decimal.New(1, -Places)

// RoundCents rounds d to Places decimal places, half away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}
