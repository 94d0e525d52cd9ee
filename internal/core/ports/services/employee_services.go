package services

import (
	"context"

	"github.com/gwssd/medical_bills_app/internal/core/domain"
	"github.com/gwssd/medical_bills_app/internal/dto"
)

// EmployeeReaderSvc defines read operations over employees.
type EmployeeReaderSvc interface {
	// ListEmployees returns all employees ordered by name ascending.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// SearchEmployees returns employees whose name contains the fragment
	// (case-insensitive), ordered by name ascending.
	SearchEmployees(ctx context.Context, name string) ([]domain.Employee, error)

	// GetEmployeeByID returns an employee by business key.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
}

// EmployeeWriterSvc defines write operations over employees.
type EmployeeWriterSvc interface {
	// CreateEmployee registers a new employee, seeding the Self dependent.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee merges the given fields into an existing employee.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) error

	// DeactivateEmployee marks an employee as retired.
	DeactivateEmployee(ctx context.Context, employeeID string) error

	// DeleteEmployee hard-deletes an employee by business key.
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeSvcFacade combines all employee service interfaces.
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
