package services

import (
	"context"
	"fmt"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/dto"
	"github.com/shopspring/decimal"
)

// financeService implements the FinanceSvcFacade interface
type financeService struct {
	BaseService
	accountRepo       portsrepo.AccountReader
	assetRepo         portsrepo.AssetReader
	paymentConfigRepo portsrepo.PaymentConfigRepositoryFacade
}

// NewFinanceService creates a new finance service over the chart of
// accounts, fixed-asset register and payment configuration.
func NewFinanceService(
	accountRepo portsrepo.AccountReader,
	assetRepo portsrepo.AssetReader,
	paymentConfigRepo portsrepo.PaymentConfigRepositoryFacade,
) portssvc.FinanceSvcFacade {
	return &financeService{
		accountRepo:       accountRepo,
		assetRepo:         assetRepo,
		paymentConfigRepo: paymentConfigRepo,
	}
}

// Ensure financeService implements the FinanceSvcFacade interface
var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

func (s *financeService) ListAccounts(ctx context.Context) (*dto.ChartOfAccountsResponse, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}

	res := &dto.ChartOfAccountsResponse{
		Accounts:     make([]dto.AccountResponse, len(accounts)),
		TotalsByType: make(map[domain.AccountType]decimal.Decimal),
	}
	for i, acc := range accounts {
		res.Accounts[i] = dto.ToAccountResponse(&acc)
		total, ok := res.TotalsByType[acc.Type]
		if !ok {
			total = decimal.Zero
		}
		res.TotalsByType[acc.Type] = total.Add(acc.Balance)
	}
	return res, nil
}

func (s *financeService) ListAssets(ctx context.Context) ([]dto.FixedAssetResponse, error) {
	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fixed assets")
		return nil, err
	}

	res := make([]dto.FixedAssetResponse, len(assets))
	for i, a := range assets {
		res[i] = dto.ToFixedAssetResponse(&a)
	}
	return res, nil
}

func (s *financeService) GetPaymentConfig(ctx context.Context) (*domain.PaymentConfig, error) {
	cfg, err := s.paymentConfigRepo.GetPaymentConfig(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payment config")
		return nil, err
	}
	return cfg, nil
}

func (s *financeService) PatchPaymentConfig(ctx context.Context, req dto.PatchPaymentConfigRequest) (*domain.PaymentConfig, error) {
	if req.ActiveGateway != nil && !req.ActiveGateway.IsValid() {
		return nil, fmt.Errorf("unknown payment gateway %q: %w", *req.ActiveGateway, apperrors.ErrValidation)
	}

	cfg, err := s.paymentConfigRepo.PatchPaymentConfig(ctx, req.ToDomainPatch())
	if err != nil {
		s.LogError(ctx, err, "Failed to patch payment config")
		return nil, err
	}

	s.LogInfo(ctx, "Payment config updated")
	return cfg, nil
}
