package repositories

import (
	"context"
	"time"

	"github.com/gwssd/medical_bills_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data.
type EmployeeReader interface {
	// FindEmployeeByEmployeeID retrieves an employee by business key.
	FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployees retrieves all employees ordered by name ascending.
	FindEmployees(ctx context.Context) ([]domain.Employee, error)

	// SearchEmployeesByName retrieves employees whose name contains the given
	// fragment (case-insensitive), ordered by name ascending.
	SearchEmployeesByName(ctx context.Context, name string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data.
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployeeFields applies a partial column update keyed by business
	// key, always refreshing updated_at. Returns apperrors.ErrNotFound when no
	// row matched.
	UpdateEmployeeFields(ctx context.Context, employeeID string, fields map[string]any, updatedAt time.Time) error

	// DeleteEmployee hard-deletes by business key. Returns
	// apperrors.ErrNotFound when no row matched.
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
