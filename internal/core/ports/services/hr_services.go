package services

import (
	"context"

	"github.com/bukupintar/bukupintar_app/internal/dto"
)

// PayrollReaderSvc defines read operations for employee payroll data
type PayrollReaderSvc interface {
	// ListEmployees retrieves all employees with their derived payroll
	// breakdowns.
	ListEmployees(ctx context.Context) ([]dto.EmployeePayrollResponse, error)

	// GetPayroll retrieves the payroll breakdown for one employee.
	GetPayroll(ctx context.Context, employeeID string) (*dto.EmployeePayrollResponse, error)
}

// PayrollSvcFacade combines all payroll-related service interfaces
type PayrollSvcFacade interface {
	PayrollReaderSvc
}
