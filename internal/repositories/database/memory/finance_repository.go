package memory

import (
	"context"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
)

type MemAccountRepository struct {
	store *Store
}

// newMemAccountRepository creates a new repository over the in-memory chart of accounts.
func newMemAccountRepository(store *Store) portsrepo.AccountReader {
	return &MemAccountRepository{store: store}
}

var _ portsrepo.AccountReader = (*MemAccountRepository)(nil)

func (r *MemAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Account, len(r.store.accounts))
	copy(out, r.store.accounts)
	return out, nil
}

type MemAssetRepository struct {
	store *Store
}

// newMemAssetRepository creates a new repository over the in-memory fixed-asset register.
func newMemAssetRepository(store *Store) portsrepo.AssetReader {
	return &MemAssetRepository{store: store}
}

var _ portsrepo.AssetReader = (*MemAssetRepository)(nil)

func (r *MemAssetRepository) ListAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.FixedAsset, len(r.store.assets))
	copy(out, r.store.assets)
	return out, nil
}

type MemPaymentConfigRepository struct {
	store *Store
}

// newMemPaymentConfigRepository creates a new repository over the in-memory payment configuration.
func newMemPaymentConfigRepository(store *Store) portsrepo.PaymentConfigRepositoryFacade {
	return &MemPaymentConfigRepository{store: store}
}

var _ portsrepo.PaymentConfigRepositoryFacade = (*MemPaymentConfigRepository)(nil)

func (r *MemPaymentConfigRepository) GetPaymentConfig(ctx context.Context) (*domain.PaymentConfig, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cfg := r.store.paymentConfig
	return &cfg, nil
}

// PatchPaymentConfig merges only the provided fields into the stored
// configuration; a nil field leaves the stored value untouched.
func (r *MemPaymentConfigRepository) PatchPaymentConfig(ctx context.Context, patch domain.PaymentConfigPatch) (*domain.PaymentConfig, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.paymentConfig = r.store.paymentConfig.Apply(patch)
	cfg := r.store.paymentConfig
	return &cfg, nil
}
