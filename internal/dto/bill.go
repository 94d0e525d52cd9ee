package dto

import (
	"github.com/gwssd/medical_bills_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBillRequest defines the data accepted when registering a bill.
// All ten fields are required.
type CreateBillRequest struct {
	BillNumber          string          `json:"bill_number" binding:"required"`
	ReceiptDate         string          `json:"receipt_date" binding:"required"`
	EmployeeID          string          `json:"employee_id" binding:"required"`
	EmployeeName        string          `json:"employee_name" binding:"required"`
	DependentName       string          `json:"dependent_name" binding:"required"`
	Relationship        string          `json:"relationship" binding:"required"`
	TreatmentPeriodFrom string          `json:"treatment_period_from" binding:"required"`
	TreatmentPeriodTo   string          `json:"treatment_period_to" binding:"required"`
	AmountClaimed       decimal.Decimal `json:"amount_claimed" binding:"required"`
	Hospital            string          `json:"hospital" binding:"required"`
}

// UpdateBillRequest defines the data allowed for a partial bill update.
// Status history is never touched through this path.
type UpdateBillRequest struct {
	BillNumber          *string          `json:"bill_number"`
	ReceiptDate         *string          `json:"receipt_date"`
	EmployeeID          *string          `json:"employee_id"`
	EmployeeName        *string          `json:"employee_name"`
	DependentName       *string          `json:"dependent_name"`
	Relationship        *string          `json:"relationship"`
	TreatmentPeriodFrom *string          `json:"treatment_period_from"`
	TreatmentPeriodTo   *string          `json:"treatment_period_to"`
	AmountClaimed       *decimal.Decimal `json:"amount_claimed"`
	Hospital            *string          `json:"hospital"`
}

// UpdateBillStatusRequest moves a bill to a new status, appending to its
// history. Date defaults to the current time when omitted.
type UpdateBillStatusRequest struct {
	Status          string           `json:"status" binding:"required"`
	Date            *string          `json:"date"`
	Remarks         *string          `json:"remarks"`
	ReferenceNumber *string          `json:"reference_number"`
	ApprovedAmount  *decimal.Decimal `json:"approved_amount"`
}

// ReferenceSearch narrows a filter to bills carrying a reference number in
// their history, optionally scoped to one historical status.
type ReferenceSearch struct {
	Number string `json:"number"`
	Status string `json:"status"`
}

// FilterBillsRequest is the multi-criteria bill filter. Absent criteria do
// not constrain the result.
type FilterBillsRequest struct {
	BillNumber      string           `json:"bill_number"`
	EmployeeID      string           `json:"employee_id"`
	EmployeeName    string           `json:"employee_name"`
	Status          string           `json:"status"`
	ReferenceSearch *ReferenceSearch `json:"reference_search"`
	DateFrom        string           `json:"date_from"`
	DateTo          string           `json:"date_to"`
	AmountFrom      *decimal.Decimal `json:"amount_from"`
	AmountTo        *decimal.Decimal `json:"amount_to"`
	Hospital        string           `json:"hospital"`
}

// StatusUpdateResponse is the wire form of one status history entry.
type StatusUpdateResponse struct {
	Status          string           `json:"status"`
	Date            string           `json:"date"`
	Remarks         *string          `json:"remarks"`
	ReferenceNumber *string          `json:"reference_number"`
	ApprovedAmount  *decimal.Decimal `json:"approved_amount"`
}

// BillResponse is the wire form of a bill.
type BillResponse struct {
	ID                    string                 `json:"id"`
	BillNumber            string                 `json:"bill_number"`
	ReceiptDate           string                 `json:"receipt_date"`
	EmployeeID            string                 `json:"employee_id"`
	EmployeeName          string                 `json:"employee_name"`
	DependentName         string                 `json:"dependent_name"`
	Relationship          string                 `json:"relationship"`
	TreatmentPeriodFrom   string                 `json:"treatment_period_from"`
	TreatmentPeriodTo     string                 `json:"treatment_period_to"`
	AmountClaimed         decimal.Decimal        `json:"amount_claimed"`
	Hospital              string                 `json:"hospital"`
	CurrentStatus         string                 `json:"current_status"`
	StatusHistory         []StatusUpdateResponse `json:"status_history"`
	LatestReferenceNumber *string                `json:"latest_reference_number"`
	LatestApprovedAmount  *decimal.Decimal       `json:"latest_approved_amount"`
	CreatedAt             string                 `json:"created_at"`
	UpdatedAt             string                 `json:"updated_at"`
}

// ToBillResponse converts a domain.Bill to its wire form.
func ToBillResponse(b *domain.Bill) BillResponse {
	history := make([]StatusUpdateResponse, len(b.StatusHistory))
	for i, u := range b.StatusHistory {
		history[i] = StatusUpdateResponse{
			Status:          u.Status,
			Date:            FormatDate(u.Date),
			Remarks:         u.Remarks,
			ReferenceNumber: u.ReferenceNumber,
			ApprovedAmount:  u.ApprovedAmount,
		}
	}
	return BillResponse{
		ID:                    b.ID,
		BillNumber:            b.BillNumber,
		ReceiptDate:           FormatDate(b.ReceiptDate),
		EmployeeID:            b.EmployeeID,
		EmployeeName:          b.EmployeeName,
		DependentName:         b.DependentName,
		Relationship:          b.Relationship,
		TreatmentPeriodFrom:   FormatDate(b.TreatmentPeriodFrom),
		TreatmentPeriodTo:     FormatDate(b.TreatmentPeriodTo),
		AmountClaimed:         b.AmountClaimed,
		Hospital:              b.Hospital,
		CurrentStatus:         b.CurrentStatus,
		StatusHistory:         history,
		LatestReferenceNumber: b.LatestReferenceNumber,
		LatestApprovedAmount:  b.LatestApprovedAmount,
		CreatedAt:             FormatDate(b.CreatedAt),
		UpdatedAt:             FormatDate(b.UpdatedAt),
	}
}

// ToBillResponseSlice converts a slice of domain bills to wire form.
func ToBillResponseSlice(bs []domain.Bill) []BillResponse {
	rs := make([]BillResponse, len(bs))
	for i := range bs {
		rs[i] = ToBillResponse(&bs[i])
	}
	return rs
}
