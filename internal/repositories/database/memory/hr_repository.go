package memory

import (
	"context"
	"fmt"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
)

type MemEmployeeRepository struct {
	store *Store
}

// newMemEmployeeRepository creates a new repository over the in-memory employee snapshot.
func newMemEmployeeRepository(store *Store) portsrepo.EmployeeReader {
	return &MemEmployeeRepository{store: store}
}

// Ensure MemEmployeeRepository implements portsrepo.EmployeeReader
var _ portsrepo.EmployeeReader = (*MemEmployeeRepository)(nil)

func (r *MemEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.employees {
		if e.EmployeeID == employeeID {
			found := e
			return &found, nil
		}
	}
	return nil, fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
}

func (r *MemEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Employee, len(r.store.employees))
	copy(out, r.store.employees)
	return out, nil
}
