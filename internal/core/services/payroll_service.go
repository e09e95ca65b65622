package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/dto"
)

// payrollService implements the PayrollSvcFacade interface
type payrollService struct {
	BaseService
	employeeRepo portsrepo.EmployeeReader
}

// NewPayrollService creates a new payroll service over the employee repository.
func NewPayrollService(repo portsrepo.EmployeeReader) portssvc.PayrollSvcFacade {
	return &payrollService{employeeRepo: repo}
}

// Ensure payrollService implements the PayrollSvcFacade interface
var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func (s *payrollService) ListEmployees(ctx context.Context) ([]dto.EmployeePayrollResponse, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, err
	}

	res := make([]dto.EmployeePayrollResponse, len(employees))
	for i, e := range employees {
		res[i] = dto.ToEmployeePayrollResponse(&e)
	}
	return res, nil
}

func (s *payrollService) GetPayroll(ctx context.Context, employeeID string) (*dto.EmployeePayrollResponse, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}

	res := dto.ToEmployeePayrollResponse(employee)
	return &res, nil
}
