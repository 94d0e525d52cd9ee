package mapping

import (
	"github.com/gwssd/medical_bills_app/internal/core/domain"
	"github.com/gwssd/medical_bills_app/internal/models"
)

// ToModelBill converts a domain Bill to its storage model.
func ToModelBill(d domain.Bill) models.Bill {
	return models.Bill{
		BillID:                d.ID,
		BillNumber:            d.BillNumber,
		ReceiptDate:           d.ReceiptDate,
		EmployeeID:            d.EmployeeID,
		EmployeeName:          d.EmployeeName,
		DependentName:         d.DependentName,
		Relationship:          d.Relationship,
		TreatmentPeriodFrom:   d.TreatmentPeriodFrom,
		TreatmentPeriodTo:     d.TreatmentPeriodTo,
		AmountClaimed:         d.AmountClaimed,
		Hospital:              d.Hospital,
		CurrentStatus:         d.CurrentStatus,
		StatusHistory:         ToModelStatusUpdates(d.StatusHistory),
		LatestReferenceNumber: d.LatestReferenceNumber,
		LatestApprovedAmount:  d.LatestApprovedAmount,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}

// ToDomainBill converts a storage model Bill to its domain form.
func ToDomainBill(m models.Bill) domain.Bill {
	return domain.Bill{
		ID:                    m.BillID,
		BillNumber:            m.BillNumber,
		ReceiptDate:           m.ReceiptDate,
		EmployeeID:            m.EmployeeID,
		EmployeeName:          m.EmployeeName,
		DependentName:         m.DependentName,
		Relationship:          m.Relationship,
		TreatmentPeriodFrom:   m.TreatmentPeriodFrom,
		TreatmentPeriodTo:     m.TreatmentPeriodTo,
		AmountClaimed:         m.AmountClaimed,
		Hospital:              m.Hospital,
		CurrentStatus:         m.CurrentStatus,
		StatusHistory:         ToDomainStatusUpdates(m.StatusHistory),
		LatestReferenceNumber: m.LatestReferenceNumber,
		LatestApprovedAmount:  m.LatestApprovedAmount,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// ToDomainBillSlice converts a slice of model bills to domain form.
func ToDomainBillSlice(ms []models.Bill) []domain.Bill {
	ds := make([]domain.Bill, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBill(m)
	}
	return ds
}

// ToModelStatusUpdate converts a domain StatusUpdate to its JSONB storage shape.
func ToModelStatusUpdate(d domain.StatusUpdate) models.StatusUpdate {
	return models.StatusUpdate{
		Status:          d.Status,
		Date:            d.Date,
		Remarks:         d.Remarks,
		ReferenceNumber: d.ReferenceNumber,
		ApprovedAmount:  d.ApprovedAmount,
	}
}

// ToModelStatusUpdates converts domain status updates to storage shape.
func ToModelStatusUpdates(ds []domain.StatusUpdate) []models.StatusUpdate {
	ms := make([]models.StatusUpdate, len(ds))
	for i, d := range ds {
		ms[i] = ToModelStatusUpdate(d)
	}
	return ms
}

// ToDomainStatusUpdates converts stored status updates to domain form.
func ToDomainStatusUpdates(ms []models.StatusUpdate) []domain.StatusUpdate {
	ds := make([]domain.StatusUpdate, len(ms))
	for i, m := range ms {
		ds[i] = domain.StatusUpdate{
			Status:          m.Status,
			Date:            m.Date,
			Remarks:         m.Remarks,
			ReferenceNumber: m.ReferenceNumber,
			ApprovedAmount:  m.ApprovedAmount,
		}
	}
	return ds
}
