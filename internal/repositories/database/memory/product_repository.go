package memory

import (
	"context"
	"fmt"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
)

type MemProductRepository struct {
	store *Store
}

// newMemProductRepository creates a new repository over the in-memory product snapshot.
func newMemProductRepository(store *Store) portsrepo.ProductReader {
	return &MemProductRepository{store: store}
}

// Ensure MemProductRepository implements portsrepo.ProductReader
var _ portsrepo.ProductReader = (*MemProductRepository)(nil)

func (r *MemProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.products {
		if p.ProductID == productID {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", productID, apperrors.ErrNotFound)
}

func (r *MemProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.snapshotProducts(), nil
}

func (r *MemProductRepository) ListWarehouses(ctx context.Context) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]string, len(r.store.warehouses))
	copy(out, r.store.warehouses)
	return out, nil
}
