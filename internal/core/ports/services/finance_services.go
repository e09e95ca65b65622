package services

import (
	"context"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	"github.com/bukupintar/bukupintar_app/internal/dto"
)

// FinanceReaderSvc defines read operations for finance data
type FinanceReaderSvc interface {
	// ListAccounts retrieves the chart of accounts with per-type balance
	// totals.
	ListAccounts(ctx context.Context) (*dto.ChartOfAccountsResponse, error)

	// ListAssets retrieves the fixed assets with derived depreciation
	// figures.
	ListAssets(ctx context.Context) ([]dto.FixedAssetResponse, error)

	// GetPaymentConfig retrieves the current payment configuration.
	GetPaymentConfig(ctx context.Context) (*domain.PaymentConfig, error)
}

// FinanceWriterSvc defines write operations for finance data
type FinanceWriterSvc interface {
	// PatchPaymentConfig merges the provided fields into the payment
	// configuration, leaving unspecified fields unchanged.
	PatchPaymentConfig(ctx context.Context, req dto.PatchPaymentConfigRequest) (*domain.PaymentConfig, error)
}

// FinanceSvcFacade combines all finance-related service interfaces
type FinanceSvcFacade interface {
	FinanceReaderSvc
	FinanceWriterSvc
}
