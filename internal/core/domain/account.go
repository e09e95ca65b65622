package domain

import "github.com/shopspring/decimal"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "Harta"
	Liability AccountType = "Kewajiban"
	Equity    AccountType = "Modal"
	Revenue   AccountType = "Pendapatan"
	Expense   AccountType = "Beban"
)

// Account is one entry in the chart of accounts. Balances are static
// snapshot values seeded at startup; they are not recomputed from
// transactions.
type Account struct {
	Code    string          `json:"code"` // unique key
	Name    string          `json:"name"`
	Type    AccountType     `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}
