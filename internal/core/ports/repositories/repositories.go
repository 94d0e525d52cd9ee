package repositories

// RepositoryProvider bundles the repositories the service layer is wired with.
type RepositoryProvider struct {
	EmployeeRepo EmployeeRepositoryFacade
	BillRepo     BillRepositoryFacade
}
