package services

import (
	portsrepo "github.com/gwssd/medical_bills_app/internal/core/ports/repositories"
	portssvc "github.com/gwssd/medical_bills_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	// Bill creation reads the employee store to snapshot the subdivision.
	container.Bill = NewBillService(repos.BillRepo, repos.EmployeeRepo)

	return container
}
