package dto

import (
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for a chart-of-accounts entry.
type AccountResponse struct {
	Code    string             `json:"code"`
	Name    string             `json:"name"`
	Type    domain.AccountType `json:"type"`
	Balance decimal.Decimal    `json:"balance"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:    acc.Code,
		Name:    acc.Name,
		Type:    acc.Type,
		Balance: acc.Balance,
	}
}

// ChartOfAccountsResponse wraps the account list with per-type balance
// totals.
type ChartOfAccountsResponse struct {
	Accounts     []AccountResponse                      `json:"accounts"`
	TotalsByType map[domain.AccountType]decimal.Decimal `json:"totalsByType"`
}
