package repositories

import (
	"context"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
)

// TransactionReader defines read operations over the transaction snapshot.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions in seed order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines the externally-driven patch operations on a
// transaction. No other field is ever mutated.
type TransactionWriter interface {
	// UpdatePaymentLink sets the payment link and gateway on one
	// transaction, leaving every other field (including status) unchanged.
	// Re-invoking overwrites the previous link.
	UpdatePaymentLink(ctx context.Context, transactionID string, link string, gateway domain.PaymentGateway) (*domain.Transaction, error)

	// UpdateStatus sets the status on one transaction.
	UpdateStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
