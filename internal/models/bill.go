package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusUpdate is the JSONB element shape stored in bills.status_history.
type StatusUpdate struct {
	Status          string           `json:"status"`
	Date            time.Time        `json:"date"`
	Remarks         *string          `json:"remarks"`
	ReferenceNumber *string          `json:"reference_number"`
	ApprovedAmount  *decimal.Decimal `json:"approved_amount"`
}

// Bill is the storage representation of a bill row.
type Bill struct {
	BillID                string           `db:"bill_id"`
	BillNumber            string           `db:"bill_number"`
	ReceiptDate           time.Time        `db:"receipt_date"`
	EmployeeID            string           `db:"employee_id"`
	EmployeeName          string           `db:"employee_name"`
	DependentName         string           `db:"dependent_name"`
	Relationship          string           `db:"relationship"`
	TreatmentPeriodFrom   time.Time        `db:"treatment_period_from"`
	TreatmentPeriodTo     time.Time        `db:"treatment_period_to"`
	AmountClaimed         decimal.Decimal  `db:"amount_claimed"`
	Hospital              string           `db:"hospital"`
	CurrentStatus         string           `db:"current_status"`
	StatusHistory         []StatusUpdate   `db:"status_history"`
	LatestReferenceNumber *string          `db:"latest_reference_number"`
	LatestApprovedAmount  *decimal.Decimal `db:"latest_approved_amount"`
	CreatedAt             time.Time        `db:"created_at"`
	UpdatedAt             time.Time        `db:"updated_at"`
}
