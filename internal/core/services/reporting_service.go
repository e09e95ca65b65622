package services

import (
	"context"

	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/dto"
	"github.com/bukupintar/bukupintar_app/internal/utils/aggregate"
	"github.com/shopspring/decimal"
)

// recentTransactionLimit caps how many transactions the dashboard shows.
const recentTransactionLimit = 5

// monthlySalesSeries is the fixed chart series the dashboard renders.
// Historical monthly rollups are not derivable from the seeded
// snapshot, so the sample figures are served as-is.
var monthlySalesSeries = []dto.MonthlySalesPoint{
	{Month: "Jan", Value: decimal.NewFromInt(45000000)},
	{Month: "Feb", Value: decimal.NewFromInt(52000000)},
	{Month: "Mar", Value: decimal.NewFromInt(48000000)},
	{Month: "Apr", Value: decimal.NewFromInt(61000000)},
	{Month: "Mei", Value: decimal.NewFromInt(55000000)},
	{Month: "Jun", Value: decimal.NewFromInt(67000000)},
}

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	productRepo     portsrepo.ProductReader
	transactionRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service over the product
// and transaction snapshots.
func NewReportingService(productRepo portsrepo.ProductReader, transactionRepo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) DashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products for dashboard")
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for dashboard")
		return nil, err
	}

	recent := txns
	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}

	return &dto.DashboardSummaryResponse{
		TotalSales:         aggregate.TotalSales(txns),
		Receivables:        aggregate.ReceivablesTotal(txns),
		ProductCount:       len(products),
		LowStockProducts:   dto.ToListProductResponse(aggregate.FilterLowStock(products)),
		RecentTransactions: dto.ToListTransactionResponse(recent),
		MonthlySales:       monthlySalesSeries,
	}, nil
}
