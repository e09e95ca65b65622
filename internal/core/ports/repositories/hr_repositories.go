package repositories

import (
	"context"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
)

// EmployeeReader defines read operations over the employee snapshot.
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by its unique identifier.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves all employees in seed order.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}
