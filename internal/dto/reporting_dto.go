package dto

import "github.com/shopspring/decimal"

// MonthlySalesPoint is one point of the dashboard sales chart.
type MonthlySalesPoint struct {
	Month string          `json:"month"`
	Value decimal.Decimal `json:"value"`
}

// DashboardSummaryResponse aggregates the derived values the dashboard
// view displays.
type DashboardSummaryResponse struct {
	TotalSales         decimal.Decimal       `json:"totalSales"`
	Receivables        decimal.Decimal       `json:"receivables"`
	ProductCount       int                   `json:"productCount"`
	LowStockProducts   []ProductResponse     `json:"lowStockProducts"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
	MonthlySales       []MonthlySalesPoint   `json:"monthlySales"`
}
