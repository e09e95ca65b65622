package services_test

import (
	"context"
	"testing"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AssistantCompleter ---
type MockAssistantCompleter struct {
	mock.Mock
}

func (m *MockAssistantCompleter) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	args := m.Called(ctx, systemPrompt, userText)
	return args.String(0), args.Error(1)
}

// --- Test Suite ---
type AssistantServiceTestSuite struct {
	suite.Suite
	mockProductRepo  *MockProductRepository
	mockTxnRepo      *MockTransactionRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockAssetRepo    *MockAssetRepository
	mockAccountRepo  *MockAccountRepository
	mockCfgRepo      *MockPaymentConfigRepository
	mockCompleter    *MockAssistantCompleter
	service          portssvc.AssistantSvcFacade
}

func (suite *AssistantServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCfgRepo = new(MockPaymentConfigRepository)
	suite.mockCompleter = new(MockAssistantCompleter)
	suite.service = services.NewAssistantService(&portsrepo.RepositoryProvider{
		ProductRepo:       suite.mockProductRepo,
		TransactionRepo:   suite.mockTxnRepo,
		EmployeeRepo:      suite.mockEmployeeRepo,
		AssetRepo:         suite.mockAssetRepo,
		AccountRepo:       suite.mockAccountRepo,
		PaymentConfigRepo: suite.mockCfgRepo,
	}, suite.mockCompleter)
}

func (suite *AssistantServiceTestSuite) expectSnapshot() {
	ctx := mock.Anything
	suite.mockProductRepo.On("ListProducts", ctx).Return(seedProducts(), nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(seedTransactions(), nil).Once()
	suite.mockEmployeeRepo.On("ListEmployees", ctx).Return([]domain.Employee{
		{EmployeeID: "E001", Name: "Budi Santoso", BaseSalary: decimal.NewFromInt(2000000)},
	}, nil).Once()
	suite.mockAssetRepo.On("ListAssets", ctx).Return([]domain.FixedAsset{}, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{
		{Code: "1101", Name: "Kas", Type: domain.Asset, Balance: decimal.NewFromInt(15000000)},
	}, nil).Once()
	suite.mockCfgRepo.On("GetPaymentConfig", ctx).Return(&domain.PaymentConfig{
		ActiveGateway:  domain.Midtrans,
		MidtransAPIKey: "SB-Mid-server-xxxxx",
		IsSandbox:      true,
	}, nil).Once()
}

// --- Test Cases ---

func (suite *AssistantServiceTestSuite) TestQuery_GroundsPromptOnSnapshot() {
	ctx := context.Background()
	suite.expectSnapshot()

	var capturedPrompt string
	suite.mockCompleter.On("Complete", ctx, mock.AnythingOfType("string"), "Berapa stok kopi?").
		Run(func(args mock.Arguments) { capturedPrompt = args.String(1) }).
		Return("Stok Kopi Arabica Gayo 1kg saat ini 195 unit.", nil).Once()

	got, err := suite.service.Query(ctx, "Berapa stok kopi?")

	suite.Require().NoError(err)
	suite.Equal("Stok Kopi Arabica Gayo 1kg saat ini 195 unit.", got.Reply)
	suite.Contains(capturedPrompt, "BukuPintar")
	suite.Contains(capturedPrompt, "Kopi Arabica Gayo 1kg")
	suite.Contains(capturedPrompt, "Budi Santoso")
	// gateway credentials stay out of the model context
	suite.NotContains(capturedPrompt, "SB-Mid-server-xxxxx")
	suite.mockCompleter.AssertExpectations(suite.T())
}

func (suite *AssistantServiceTestSuite) TestQuery_CompleterFailureFallsBack() {
	ctx := context.Background()
	suite.expectSnapshot()
	suite.mockCompleter.On("Complete", ctx, mock.AnythingOfType("string"), "Berapa omzet bulan ini?").
		Return("", assert.AnError).Once()

	got, err := suite.service.Query(ctx, "Berapa omzet bulan ini?")

	suite.Require().NoError(err)
	suite.Equal("Maaf, asisten AI sedang mengalami kendala teknis. Mohon coba beberapa saat lagi.", got.Reply)
	suite.mockCompleter.AssertExpectations(suite.T())
}

func (suite *AssistantServiceTestSuite) TestQuery_SnapshotFailureFallsBack() {
	ctx := context.Background()
	suite.mockProductRepo.On("ListProducts", mock.Anything).Return(nil, assert.AnError).Once()

	got, err := suite.service.Query(ctx, "Berapa stok kopi?")

	suite.Require().NoError(err)
	suite.Equal("Maaf, asisten AI sedang mengalami kendala teknis. Mohon coba beberapa saat lagi.", got.Reply)
	suite.mockCompleter.AssertNotCalled(suite.T(), "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssistantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssistantServiceTestSuite))
}
