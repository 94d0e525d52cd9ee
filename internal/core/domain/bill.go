package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is one stage of the bill approval pipeline.
type BillStatus string

const (
	BillStatusReceived       BillStatus = "Received From Subdivision"
	BillStatusSentToMS       BillStatus = "Sent to Medical Superintendent"
	BillStatusReceivedFromMS BillStatus = "Received back from Medical Superintendent"
	BillStatusSentToCO       BillStatus = "Sent to Circle Office"
	BillStatusReceivedFromCO BillStatus = "Received back from Circle Office"
	BillStatusOfficeOrder    BillStatus = "Office Order"
	BillStatusVoucherCreated BillStatus = "Voucher Creation"
	BillStatusVoucherPassed  BillStatus = "Passing of Voucher"
	BillStatusSentBack       BillStatus = "Sent Back to Subdivision"
	BillStatusRejected       BillStatus = "Rejected"
)

// AllBillStatuses lists every member of the closed status set, in pipeline order.
var AllBillStatuses = []BillStatus{
	BillStatusReceived,
	BillStatusSentToMS,
	BillStatusReceivedFromMS,
	BillStatusSentToCO,
	BillStatusReceivedFromCO,
	BillStatusOfficeOrder,
	BillStatusVoucherCreated,
	BillStatusVoucherPassed,
	BillStatusSentBack,
	BillStatusRejected,
}

// IsValidBillStatus reports whether s is a member of the closed status set.
// Status updates accept any member from any current state; there is no
// transition table and Rejected is not a terminal lock.
func IsValidBillStatus(s string) bool {
	for _, known := range AllBillStatuses {
		if s == string(known) {
			return true
		}
	}
	return false
}

// ReceivedStatusFor builds the templated initial status for a bill arriving
// from the given subdivision, e.g. "Received From W/S Sub Division No 2".
// The templated value is what current_status and the seeded history entry
// carry; it is intentionally not a member of the closed set.
func ReceivedStatusFor(subDivision string) string {
	return "Received From " + subDivision
}

// DefaultReceivedRemarks is the remark on the auto-seeded first history entry.
const DefaultReceivedRemarks = "Bill received from subdivision"

// StatusUpdate is one entry of a bill's status history. Entries are immutable
// once appended and the history is never reordered or truncated.
type StatusUpdate struct {
	Status          string           `json:"status"`
	Date            time.Time        `json:"date"`
	Remarks         *string          `json:"remarks"`
	ReferenceNumber *string          `json:"reference_number"`
	ApprovedAmount  *decimal.Decimal `json:"approved_amount"`
}

// Bill is a medical reimbursement bill moving through the approval pipeline.
// CurrentStatus always mirrors the status of the last StatusHistory entry;
// LatestReferenceNumber/LatestApprovedAmount are denormalized copies of the
// most recent update, kept for querying.
type Bill struct {
	ID                    string
	BillNumber            string
	ReceiptDate           time.Time
	EmployeeID            string
	EmployeeName          string
	DependentName         string
	Relationship          string
	TreatmentPeriodFrom   time.Time
	TreatmentPeriodTo     time.Time
	AmountClaimed         decimal.Decimal
	Hospital              string
	CurrentStatus         string
	StatusHistory         []StatusUpdate
	LatestReferenceNumber *string
	LatestApprovedAmount  *decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
