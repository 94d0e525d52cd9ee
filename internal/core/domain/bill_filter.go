package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillFilter is a conjunctive filter over bills. Zero-valued / nil criteria
// are absent and do not constrain the query.
type BillFilter struct {
	// Case-insensitive substring matches.
	BillNumber   string
	EmployeeID   string
	EmployeeName string

	// Exact match on current_status.
	Status string

	// ReferenceNumber, when set, is a case-insensitive substring match against
	// status history reference numbers. When ReferenceStatus is also set the
	// match is scoped to history entries with exactly that status; otherwise
	// any entry may match.
	ReferenceNumber string
	ReferenceStatus string

	// Closed receipt-date range, either bound optional.
	DateFrom *time.Time
	DateTo   *time.Time

	// Claimed-amount range, either bound optional.
	AmountFrom *decimal.Decimal
	AmountTo   *decimal.Decimal

	// Exact match.
	Hospital string
}
