package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/dto"
	"github.com/bukupintar/bukupintar_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees and payroll.
type employeeHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(ps portssvc.PayrollSvcFacade) *employeeHandler {
	return &employeeHandler{
		payrollService: ps,
	}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newEmployeeHandler(payrollService)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.GET("/:employeeID/payroll", h.getPayroll)
	}
}

// listEmployees godoc
// @Summary List employees
// @Description Retrieves all employees with their derived payroll breakdowns
// @Tags employees
// @Produce json
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 500 {object} map[string]string "Failed to list employees"
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.payrollService.ListEmployees(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list employees"})
		return
	}

	c.JSON(http.StatusOK, dto.ListEmployeesResponse{Employees: employees})
}

// getPayroll godoc
// @Summary Get an employee's payroll breakdown
// @Description Retrieves the derived pay calculation for one employee
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeePayrollResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to get payroll"
// @Router /employees/{employeeID}/payroll [get]
func (h *employeeHandler) getPayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	payroll, err := h.payrollService.GetPayroll(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			logger.Error("Failed to get payroll", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payroll"})
		}
		return
	}

	c.JSON(http.StatusOK, payroll)
}
