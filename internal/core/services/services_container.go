package services

import (
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	repos *portsrepo.RepositoryProvider,
	completer portssvc.AssistantCompleter,
	linker portssvc.PaymentLinker,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Inventory = NewInventoryService(repos.ProductRepo)
	container.Sales = NewSalesService(repos.TransactionRepo, repos.PaymentConfigRepo, linker)
	container.Payroll = NewPayrollService(repos.EmployeeRepo)
	container.Finance = NewFinanceService(repos.AccountRepo, repos.AssetRepo, repos.PaymentConfigRepo)
	container.Reporting = NewReportingService(repos.ProductRepo, repos.TransactionRepo)
	container.Assistant = NewAssistantService(repos, completer)

	return container
}
