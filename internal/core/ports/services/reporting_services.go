package services

import (
	"context"

	"github.com/bukupintar/bukupintar_app/internal/dto"
)

// ReportingSvcFacade defines operations for the dashboard summary view
type ReportingSvcFacade interface {
	// DashboardSummary aggregates the derived values the dashboard
	// displays: total sales, receivables, low-stock products, recent
	// transactions and the monthly sales series.
	DashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
}
