package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/dto"
	"github.com/bukupintar/bukupintar_app/internal/handlers"
	"github.com/bukupintar/bukupintar_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SalesService ---
type MockSalesService struct {
	mock.Mock
}

func (m *MockSalesService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockSalesService) ListTransactions(ctx context.Context, txnType domain.TransactionType) ([]domain.Transaction, error) {
	args := m.Called(ctx, txnType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockSalesService) TotalSales(ctx context.Context) (dto.AmountResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.AmountResponse), args.Error(1)
}

func (m *MockSalesService) ExportSalesCSV(ctx context.Context) (*dto.CSVExport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CSVExport), args.Error(1)
}

func (m *MockSalesService) AssignPaymentLink(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockSalesService) UpdateStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SalesSvcFacade = (*MockSalesService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockSalesService *MockSalesService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockSalesService = new(MockSalesService)

	cfg := &config.Config{AssistantRateLimit: "10-M"}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Sales: suite.mockSalesService,
	})
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestListTransactions_FilterByType() {
	txns := []domain.Transaction{
		{TransactionID: "INV-2023-001", Type: domain.Sale, Total: decimal.NewFromInt(1500000), Status: domain.StatusPaid},
	}
	suite.mockSalesService.On("ListTransactions", mock.Anything, domain.Sale).Return(txns, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions?type=Penjualan", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("INV-2023-001", resp.Transactions[0].TransactionID)
	suite.mockSalesService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_InvalidType() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions?type=Unknown", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSalesService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetTransactionByID_NotFound() {
	suite.mockSalesService.On("GetTransactionByID", mock.Anything, "INV-MISSING").Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/INV-MISSING", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSalesService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestAssignPaymentLink_Success() {
	updated := &domain.Transaction{
		TransactionID:  "INV-2023-002",
		Type:           domain.Sale,
		Status:         domain.StatusUnpaid,
		PaymentLink:    "https://checkout.xendit.co/web/abc123",
		PaymentGateway: domain.Xendit,
	}
	suite.mockSalesService.On("AssignPaymentLink", mock.Anything, "INV-2023-002").Return(updated, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/INV-2023-002/payment-link", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("https://checkout.xendit.co/web/abc123", resp.PaymentLink)
	suite.Equal(domain.StatusUnpaid, resp.Status)
	suite.mockSalesService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateStatus_InvalidValue() {
	w := httptest.NewRecorder()
	body := strings.NewReader(`{"status":"Dibatalkan"}`)
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/transactions/INV-2023-002/status", body)
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Status must be one of")
	suite.mockSalesService.AssertNotCalled(suite.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestUpdateStatus_Success() {
	updated := &domain.Transaction{TransactionID: "INV-2023-002", Type: domain.Sale, Status: domain.StatusPaid}
	suite.mockSalesService.On("UpdateStatus", mock.Anything, "INV-2023-002", domain.StatusPaid).Return(updated, nil).Once()

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"status":"Lunas"}`)
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/transactions/INV-2023-002/status", body)
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.StatusPaid, resp.Status)
	suite.mockSalesService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestExportSalesCSV() {
	export := &dto.CSVExport{
		Filename: "penjualan-2023-10-16.csv",
		Content:  []byte(`"ID Faktur","Pelanggan","Email","Tanggal","Total","Status","Gateway"` + "\n"),
	}
	suite.mockSalesService.On("ExportSalesCSV", mock.Anything).Return(export, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/export", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "penjualan-2023-10-16.csv")
	suite.Contains(w.Body.String(), `"ID Faktur"`)
	suite.mockSalesService.AssertExpectations(suite.T())
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
