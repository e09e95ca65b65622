package services

import (
	"context"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	"github.com/bukupintar/bukupintar_app/internal/dto"
)

// SalesReaderSvc defines read operations for transaction data
type SalesReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its ID.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions, optionally filtered by
	// type, preserving original order. An empty type returns all.
	ListTransactions(ctx context.Context, txnType domain.TransactionType) ([]domain.Transaction, error)

	// TotalSales sums the totals of all sales transactions.
	TotalSales(ctx context.Context) (decimalAmount dto.AmountResponse, err error)

	// ExportSalesCSV renders the sales transactions as a CSV download.
	ExportSalesCSV(ctx context.Context) (*dto.CSVExport, error)
}

// SalesWriterSvc defines the externally-driven transaction patches
type SalesWriterSvc interface {
	// AssignPaymentLink generates a payment link for the transaction via
	// the active gateway and stores it together with the gateway tag.
	// The transaction status is never touched.
	AssignPaymentLink(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// UpdateStatus patches the transaction's payment status.
	UpdateStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error)
}

// SalesSvcFacade combines all sales-related service interfaces
type SalesSvcFacade interface {
	SalesReaderSvc
	SalesWriterSvc
}

// PaymentLinker generates a payment link for a transaction using the
// given gateway. Implementations stand in for real gateway integrations;
// how the link string is produced is entirely their concern.
type PaymentLinker interface {
	GenerateLink(ctx context.Context, txn domain.Transaction, gateway domain.PaymentGateway, sandbox bool) (string, error)
}
