package services

import (
	"context"

	"github.com/gwssd/medical_bills_app/internal/core/domain"
	"github.com/gwssd/medical_bills_app/internal/dto"
)

// BillReaderSvc defines read operations over bills.
type BillReaderSvc interface {
	// ListBills returns all bills, newest first.
	ListBills(ctx context.Context) ([]domain.Bill, error)

	// GetBillByID returns a bill by storage identifier.
	GetBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// GetBillsByEmployee returns bills for an employee business key, newest first.
	GetBillsByEmployee(ctx context.Context, employeeID string) ([]domain.Bill, error)

	// GetBillsByStatus returns bills whose current status matches exactly.
	// The status must be a member of the closed status set.
	GetBillsByStatus(ctx context.Context, status string) ([]domain.Bill, error)

	// FilterBills returns bills matching the conjunction of the given criteria.
	FilterBills(ctx context.Context, req dto.FilterBillsRequest) ([]domain.Bill, error)
}

// BillWriterSvc defines write operations over bills.
type BillWriterSvc interface {
	// CreateBill registers a new bill, snapshotting the employee's subdivision
	// and seeding the status history.
	CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error)

	// UpdateBill merges the given fields into an existing bill.
	UpdateBill(ctx context.Context, billID string, req dto.UpdateBillRequest) error

	// UpdateBillStatus appends a status update to a bill's history and moves
	// its current status, atomically.
	UpdateBillStatus(ctx context.Context, billID string, req dto.UpdateBillStatusRequest) error

	// DeleteBill hard-deletes a bill by storage identifier.
	DeleteBill(ctx context.Context, billID string) error
}

// BillSvcFacade combines all bill service interfaces.
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}
