package domain

import "github.com/shopspring/decimal"

// Employee represents a worker paid a base salary plus piece-rate
// (borongan) wages, with loan repayments deducted from net pay.
type Employee struct {
	EmployeeID     string          `json:"employeeID"`
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	BaseSalary     decimal.Decimal `json:"baseSalary"`
	BoronganRate   decimal.Decimal `json:"boronganRate"`
	CompletedTasks int64           `json:"completedTasks"`
	Loans          decimal.Decimal `json:"loans"`
}

// PayrollBreakdown is the derived pay calculation for one employee.
type PayrollBreakdown struct {
	GrossBorongan decimal.Decimal `json:"grossBorongan"`
	GrossSalary   decimal.Decimal `json:"grossSalary"`
	NetSalary     decimal.Decimal `json:"netSalary"`
}

// Payroll computes the employee's pay for the period:
// grossBorongan = boronganRate * completedTasks,
// grossSalary = baseSalary + grossBorongan,
// netSalary = grossSalary - loans.
// NetSalary is not floored at zero; a negative value signals
// over-indebtedness and is reported as-is.
func (e Employee) Payroll() PayrollBreakdown {
	grossBorongan := e.BoronganRate.Mul(decimal.NewFromInt(e.CompletedTasks))
	grossSalary := e.BaseSalary.Add(grossBorongan)
	return PayrollBreakdown{
		GrossBorongan: grossBorongan,
		GrossSalary:   grossSalary,
		NetSalary:     grossSalary.Sub(e.Loans),
	}
}
