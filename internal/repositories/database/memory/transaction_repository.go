package memory

import (
	"context"
	"fmt"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
)

type MemTransactionRepository struct {
	store *Store
}

// newMemTransactionRepository creates a new repository over the in-memory transaction snapshot.
func newMemTransactionRepository(store *Store) portsrepo.TransactionRepositoryFacade {
	return &MemTransactionRepository{store: store}
}

// Ensure MemTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*MemTransactionRepository)(nil)

func (r *MemTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, t := range r.store.transactions {
		if t.TransactionID == transactionID {
			found := t
			return &found, nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
}

func (r *MemTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.snapshotTransactions(), nil
}

// UpdatePaymentLink overwrites the payment link and gateway tag on one
// transaction. All other fields, status included, stay as they were.
func (r *MemTransactionRepository) UpdatePaymentLink(ctx context.Context, transactionID string, link string, gateway domain.PaymentGateway) (*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.transactions {
		if r.store.transactions[i].TransactionID == transactionID {
			r.store.transactions[i].PaymentLink = link
			r.store.transactions[i].PaymentGateway = gateway
			updated := r.store.transactions[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
}

func (r *MemTransactionRepository) UpdateStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.transactions {
		if r.store.transactions[i].TransactionID == transactionID {
			r.store.transactions[i].Status = status
			updated := r.store.transactions[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
}
