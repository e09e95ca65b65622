package services_test

import (
	"context"
	"testing"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/core/services"
	"github.com/bukupintar/bukupintar_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) ListAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

// --- Mock PaymentConfigRepository ---
type MockPaymentConfigRepository struct {
	mock.Mock
}

func (m *MockPaymentConfigRepository) GetPaymentConfig(ctx context.Context) (*domain.PaymentConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentConfig), args.Error(1)
}

func (m *MockPaymentConfigRepository) PatchPaymentConfig(ctx context.Context, patch domain.PaymentConfigPatch) (*domain.PaymentConfig, error) {
	args := m.Called(ctx, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentConfig), args.Error(1)
}

// --- Test Suite ---
type FinanceServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockAssetRepo   *MockAssetRepository
	mockCfgRepo     *MockPaymentConfigRepository
	service         portssvc.FinanceSvcFacade
}

func (suite *FinanceServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockCfgRepo = new(MockPaymentConfigRepository)
	suite.service = services.NewFinanceService(suite.mockAccountRepo, suite.mockAssetRepo, suite.mockCfgRepo)
}

// --- Test Cases ---

func (suite *FinanceServiceTestSuite) TestListAccounts_TotalsByType() {
	ctx := context.Background()
	accounts := []domain.Account{
		{Code: "1101", Name: "Kas", Type: domain.Asset, Balance: decimal.NewFromInt(15000000)},
		{Code: "1102", Name: "Bank BCA", Type: domain.Asset, Balance: decimal.NewFromInt(85000000)},
		{Code: "2101", Name: "Hutang Usaha", Type: domain.Liability, Balance: decimal.NewFromInt(25000000)},
	}
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()

	got, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Len(got.Accounts, 3)
	suite.True(got.TotalsByType[domain.Asset].Equal(decimal.NewFromInt(100000000)))
	suite.True(got.TotalsByType[domain.Liability].Equal(decimal.NewFromInt(25000000)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestListAssets_DerivedDepreciation() {
	ctx := context.Background()
	assets := []domain.FixedAsset{
		{
			AssetID:                 "A001",
			Name:                    "Mesin Roasting Kopi",
			Cost:                    decimal.NewFromInt(50000000),
			UsefulLifeYears:         10,
			SalvageValue:            decimal.NewFromInt(5000000),
			AccumulatedDepreciation: decimal.NewFromInt(9000000),
		},
	}
	suite.mockAssetRepo.On("ListAssets", ctx).Return(assets, nil).Once()

	got, err := suite.service.ListAssets(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(got[0].AnnualDepreciation.Equal(decimal.NewFromInt(4500000)))
	suite.True(got[0].BookValue.Equal(decimal.NewFromInt(41000000)))
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestPatchPaymentConfig_Success() {
	ctx := context.Background()
	gateway := domain.Xendit
	req := dto.PatchPaymentConfigRequest{ActiveGateway: &gateway}
	patched := &domain.PaymentConfig{ActiveGateway: domain.Xendit, IsSandbox: true}

	suite.mockCfgRepo.On("PatchPaymentConfig", ctx, mock.MatchedBy(func(p domain.PaymentConfigPatch) bool {
		return p.ActiveGateway != nil && *p.ActiveGateway == domain.Xendit && p.IsSandbox == nil
	})).Return(patched, nil).Once()

	got, err := suite.service.PatchPaymentConfig(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Xendit, got.ActiveGateway)
	suite.True(got.IsSandbox)
	suite.mockCfgRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestPatchPaymentConfig_UnknownGateway() {
	ctx := context.Background()
	gateway := domain.PaymentGateway("Paypal")
	req := dto.PatchPaymentConfigRequest{ActiveGateway: &gateway}

	got, err := suite.service.PatchPaymentConfig(ctx, req)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCfgRepo.AssertNotCalled(suite.T(), "PatchPaymentConfig", mock.Anything, mock.Anything)
}

func (suite *FinanceServiceTestSuite) TestGetPaymentConfig() {
	ctx := context.Background()
	cfg := &domain.PaymentConfig{ActiveGateway: domain.Midtrans, MidtransAPIKey: "SB-Mid-server-xxxxx", IsSandbox: true}
	suite.mockCfgRepo.On("GetPaymentConfig", ctx).Return(cfg, nil).Once()

	got, err := suite.service.GetPaymentConfig(ctx)

	suite.Require().NoError(err)
	suite.Equal(cfg, got)
	suite.mockCfgRepo.AssertExpectations(suite.T())
}

func TestFinanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceServiceTestSuite))
}
