package memory

import (
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all in-memory repositories over one
// shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:       newMemProductRepository(store),
		TransactionRepo:   newMemTransactionRepository(store),
		EmployeeRepo:      newMemEmployeeRepository(store),
		AssetRepo:         newMemAssetRepository(store),
		AccountRepo:       newMemAccountRepository(store),
		PaymentConfigRepo: newMemPaymentConfigRepository(store),
	}
}
