package memory

import (
	"sync"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
)

// Store holds the whole business snapshot in process memory for the
// lifetime of the session. It is seeded once at startup from the fixed
// sample data and mutated only through the repository patch operations;
// no entity is ever created or deleted. A single RWMutex guards all
// access.
type Store struct {
	mu            sync.RWMutex
	warehouses    []string
	products      []domain.Product
	transactions  []domain.Transaction
	employees     []domain.Employee
	assets        []domain.FixedAsset
	accounts      []domain.Account
	paymentConfig domain.PaymentConfig
}

// NewStore creates a store seeded with the sample business data.
func NewStore() *Store {
	return &Store{
		warehouses:    append([]string(nil), domain.KnownWarehouses...),
		products:      seedProducts(),
		transactions:  seedTransactions(),
		employees:     seedEmployees(),
		assets:        seedAssets(),
		accounts:      seedAccounts(),
		paymentConfig: seedPaymentConfig(),
	}
}

// snapshotTransactions returns a copy of the transaction slice so
// callers can aggregate without holding the lock.
func (s *Store) snapshotTransactions() []domain.Transaction {
	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) snapshotProducts() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}
