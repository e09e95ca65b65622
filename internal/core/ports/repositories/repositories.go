package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container at startup.
type RepositoryProvider struct {
	ProductRepo       ProductReader
	TransactionRepo   TransactionRepositoryFacade
	EmployeeRepo      EmployeeReader
	AssetRepo         AssetReader
	AccountRepo       AccountReader
	PaymentConfigRepo PaymentConfigRepositoryFacade
}
