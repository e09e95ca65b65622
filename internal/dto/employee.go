package dto

import (
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmployeePayrollResponse defines the data returned for an employee
// together with the derived payroll breakdown.
type EmployeePayrollResponse struct {
	EmployeeID     string          `json:"employeeID"`
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	BaseSalary     decimal.Decimal `json:"baseSalary"`
	BoronganRate   decimal.Decimal `json:"boronganRate"`
	CompletedTasks int64           `json:"completedTasks"`
	Loans          decimal.Decimal `json:"loans"`
	GrossBorongan  decimal.Decimal `json:"grossBorongan"`
	GrossSalary    decimal.Decimal `json:"grossSalary"`
	NetSalary      decimal.Decimal `json:"netSalary"`
}

// ToEmployeePayrollResponse converts a domain.Employee and its payroll
// breakdown to an EmployeePayrollResponse DTO
func ToEmployeePayrollResponse(e *domain.Employee) EmployeePayrollResponse {
	payroll := e.Payroll()
	return EmployeePayrollResponse{
		EmployeeID:     e.EmployeeID,
		Name:           e.Name,
		Role:           e.Role,
		BaseSalary:     e.BaseSalary,
		BoronganRate:   e.BoronganRate,
		CompletedTasks: e.CompletedTasks,
		Loans:          e.Loans,
		GrossBorongan:  payroll.GrossBorongan,
		GrossSalary:    payroll.GrossSalary,
		NetSalary:      payroll.NetSalary,
	}
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeePayrollResponse `json:"employees"`
}
