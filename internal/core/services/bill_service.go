package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gwssd/medical_bills_app/internal/apperrors"
	"github.com/gwssd/medical_bills_app/internal/core/domain"
	portsrepo "github.com/gwssd/medical_bills_app/internal/core/ports/repositories"
	portssvc "github.com/gwssd/medical_bills_app/internal/core/ports/services"
	"github.com/gwssd/medical_bills_app/internal/dto"
)

// unknownSubDivision is the snapshot value when a bill references an employee
// that does not exist or has no subdivision on record.
const unknownSubDivision = "Unknown"

type billService struct {
	billRepo     portsrepo.BillRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

// NewBillService creates the bill service. The employee repository is only
// read at bill creation to snapshot the subdivision.
func NewBillService(billRepo portsrepo.BillRepositoryFacade, employeeRepo portsrepo.EmployeeReader) portssvc.BillSvcFacade {
	return &billService{billRepo: billRepo, employeeRepo: employeeRepo}
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

func (s *billService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error) {
	existing, err := s.billRepo.FindBillByNumber(ctx, req.BillNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing bill: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("bill number %s: %w", req.BillNumber, apperrors.ErrDuplicate)
	}

	// Snapshot the subdivision from the employee record. A dangling employee
	// reference is tolerated and falls back to "Unknown".
	subDivision := unknownSubDivision
	employee, err := s.employeeRepo.FindEmployeeByEmployeeID(ctx, req.EmployeeID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up employee for bill: %w", err)
	}
	if employee != nil && employee.SubDivision != nil && *employee.SubDivision != "" {
		subDivision = *employee.SubDivision
	}

	receiptDate, err := dto.ParseDate(req.ReceiptDate)
	if err != nil {
		return nil, err
	}
	treatmentFrom, err := dto.ParseDate(req.TreatmentPeriodFrom)
	if err != nil {
		return nil, err
	}
	treatmentTo, err := dto.ParseDate(req.TreatmentPeriodTo)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	receivedStatus := domain.ReceivedStatusFor(subDivision)
	remarks := domain.DefaultReceivedRemarks
	bill := domain.Bill{
		ID:                  uuid.NewString(),
		BillNumber:          req.BillNumber,
		ReceiptDate:         receiptDate,
		EmployeeID:          req.EmployeeID,
		EmployeeName:        req.EmployeeName,
		DependentName:       req.DependentName,
		Relationship:        req.Relationship,
		TreatmentPeriodFrom: treatmentFrom,
		TreatmentPeriodTo:   treatmentTo,
		AmountClaimed:       req.AmountClaimed,
		Hospital:            req.Hospital,
		CurrentStatus:       receivedStatus,
		StatusHistory: []domain.StatusUpdate{{
			Status:  receivedStatus,
			Date:    now,
			Remarks: &remarks,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}
	return &bill, nil
}

func (s *billService) ListBills(ctx context.Context) ([]domain.Bill, error) {
	bills, err := s.billRepo.FindBills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func (s *billService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get bill %s: %w", billID, err)
	}
	return bill, nil
}

func (s *billService) GetBillsByEmployee(ctx context.Context, employeeID string) ([]domain.Bill, error) {
	bills, err := s.billRepo.FindBillsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills for employee %s: %w", employeeID, err)
	}
	return bills, nil
}

func (s *billService) UpdateBill(ctx context.Context, billID string, req dto.UpdateBillRequest) error {
	fields := map[string]any{}
	setString := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	setString("bill_number", req.BillNumber)
	setString("employee_id", req.EmployeeID)
	setString("employee_name", req.EmployeeName)
	setString("dependent_name", req.DependentName)
	setString("relationship", req.Relationship)
	setString("hospital", req.Hospital)

	setDate := func(column string, value *string) error {
		if value == nil {
			return nil
		}
		t, err := dto.ParseDate(*value)
		if err != nil {
			return err
		}
		fields[column] = t
		return nil
	}
	if err := setDate("receipt_date", req.ReceiptDate); err != nil {
		return err
	}
	if err := setDate("treatment_period_from", req.TreatmentPeriodFrom); err != nil {
		return err
	}
	if err := setDate("treatment_period_to", req.TreatmentPeriodTo); err != nil {
		return err
	}
	if req.AmountClaimed != nil {
		fields["amount_claimed"] = *req.AmountClaimed
	}

	return s.billRepo.UpdateBillFields(ctx, billID, fields, time.Now().UTC())
}

func (s *billService) UpdateBillStatus(ctx context.Context, billID string, req dto.UpdateBillStatusRequest) error {
	if !domain.IsValidBillStatus(req.Status) {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidStatus, req.Status)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil && *req.Date != "" {
		parsed, err := dto.ParseDate(*req.Date)
		if err != nil {
			return err
		}
		date = parsed
	}

	update := domain.StatusUpdate{
		Status:          req.Status,
		Date:            date,
		Remarks:         req.Remarks,
		ReferenceNumber: req.ReferenceNumber,
		ApprovedAmount:  req.ApprovedAmount,
	}
	return s.billRepo.AppendBillStatus(ctx, billID, update, now)
}

func (s *billService) DeleteBill(ctx context.Context, billID string) error {
	return s.billRepo.DeleteBill(ctx, billID)
}

func (s *billService) GetBillsByStatus(ctx context.Context, status string) ([]domain.Bill, error) {
	if !domain.IsValidBillStatus(status) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidStatus, status)
	}
	bills, err := s.billRepo.FindBillsByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills by status: %w", err)
	}
	return bills, nil
}

func (s *billService) FilterBills(ctx context.Context, req dto.FilterBillsRequest) ([]domain.Bill, error) {
	filter := domain.BillFilter{
		BillNumber:   req.BillNumber,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Status:       req.Status,
		AmountFrom:   req.AmountFrom,
		AmountTo:     req.AmountTo,
		Hospital:     req.Hospital,
	}
	if req.ReferenceSearch != nil && req.ReferenceSearch.Number != "" {
		filter.ReferenceNumber = req.ReferenceSearch.Number
		filter.ReferenceStatus = req.ReferenceSearch.Status
	}
	if req.DateFrom != "" {
		t, err := dto.ParseDate(req.DateFrom)
		if err != nil {
			return nil, err
		}
		filter.DateFrom = &t
	}
	if req.DateTo != "" {
		t, err := dto.ParseDate(req.DateTo)
		if err != nil {
			return nil, err
		}
		filter.DateTo = &t
	}

	bills, err := s.billRepo.FilterBills(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter bills: %w", err)
	}
	return bills, nil
}
