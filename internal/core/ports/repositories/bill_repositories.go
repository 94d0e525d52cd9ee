package repositories

import (
	"context"
	"time"

	"github.com/gwssd/medical_bills_app/internal/core/domain"
)

// BillReader defines read operations for bill data.
type BillReader interface {
	// FindBillByID retrieves a bill by its storage identifier.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// FindBillByNumber retrieves a bill by business key.
	FindBillByNumber(ctx context.Context, billNumber string) (*domain.Bill, error)

	// FindBills retrieves all bills, newest created_at first.
	FindBills(ctx context.Context) ([]domain.Bill, error)

	// FindBillsByEmployee retrieves bills referencing the given employee
	// business key, newest created_at first.
	FindBillsByEmployee(ctx context.Context, employeeID string) ([]domain.Bill, error)

	// FindBillsByStatus retrieves bills whose current_status matches exactly,
	// newest updated_at first.
	FindBillsByStatus(ctx context.Context, status string) ([]domain.Bill, error)

	// FilterBills retrieves bills matching the conjunction of the given
	// criteria, newest updated_at first.
	FilterBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error)
}

// BillWriter defines write operations for bill data.
type BillWriter interface {
	// SaveBill persists a new bill with its seeded status history.
	SaveBill(ctx context.Context, bill domain.Bill) error

	// UpdateBillFields applies a partial column update by storage identifier,
	// always refreshing updated_at. Never touches status_history. Returns
	// apperrors.ErrNotFound when no row matched.
	UpdateBillFields(ctx context.Context, billID string, fields map[string]any, updatedAt time.Time) error

	// AppendBillStatus atomically sets current_status, updated_at and the
	// denormalized latest_* columns while appending the update to
	// status_history, in a single row update. Returns apperrors.ErrNotFound
	// when no row matched.
	AppendBillStatus(ctx context.Context, billID string, update domain.StatusUpdate, updatedAt time.Time) error

	// DeleteBill hard-deletes by storage identifier. Returns
	// apperrors.ErrNotFound when no row matched.
	DeleteBill(ctx context.Context, billID string) error
}

// BillRepositoryFacade combines all bill repository interfaces.
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
