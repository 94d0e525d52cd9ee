package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gwssd/medical_bills_app/internal/apperrors"
	"github.com/gwssd/medical_bills_app/internal/core/domain"
	portsrepo "github.com/gwssd/medical_bills_app/internal/core/ports/repositories"
	portssvc "github.com/gwssd/medical_bills_app/internal/core/ports/services"
	"github.com/gwssd/medical_bills_app/internal/core/services"
	"github.com/gwssd/medical_bills_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	var bill *domain.Bill
	if args.Get(0) != nil {
		bill = args.Get(0).(*domain.Bill)
	}
	return bill, args.Error(1)
}

func (m *MockBillRepository) FindBillByNumber(ctx context.Context, billNumber string) (*domain.Bill, error) {
	args := m.Called(ctx, billNumber)
	var bill *domain.Bill
	if args.Get(0) != nil {
		bill = args.Get(0).(*domain.Bill)
	}
	return bill, args.Error(1)
}

func (m *MockBillRepository) FindBills(ctx context.Context) ([]domain.Bill, error) {
	args := m.Called(ctx)
	var bills []domain.Bill
	if args.Get(0) != nil {
		bills = args.Get(0).([]domain.Bill)
	}
	return bills, args.Error(1)
}

func (m *MockBillRepository) FindBillsByEmployee(ctx context.Context, employeeID string) ([]domain.Bill, error) {
	args := m.Called(ctx, employeeID)
	var bills []domain.Bill
	if args.Get(0) != nil {
		bills = args.Get(0).([]domain.Bill)
	}
	return bills, args.Error(1)
}

func (m *MockBillRepository) FindBillsByStatus(ctx context.Context, status string) ([]domain.Bill, error) {
	args := m.Called(ctx, status)
	var bills []domain.Bill
	if args.Get(0) != nil {
		bills = args.Get(0).([]domain.Bill)
	}
	return bills, args.Error(1)
}

func (m *MockBillRepository) FilterBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error) {
	args := m.Called(ctx, filter)
	var bills []domain.Bill
	if args.Get(0) != nil {
		bills = args.Get(0).([]domain.Bill)
	}
	return bills, args.Error(1)
}

func (m *MockBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) UpdateBillFields(ctx context.Context, billID string, fields map[string]any, updatedAt time.Time) error {
	args := m.Called(ctx, billID, fields, updatedAt)
	return args.Error(0)
}

func (m *MockBillRepository) AppendBillStatus(ctx context.Context, billID string, update domain.StatusUpdate, updatedAt time.Time) error {
	args := m.Called(ctx, billID, update, updatedAt)
	return args.Error(0)
}

func (m *MockBillRepository) DeleteBill(ctx context.Context, billID string) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

var _ portsrepo.BillRepositoryFacade = (*MockBillRepository)(nil)

// --- Test Suite ---
type BillServiceTestSuite struct {
	suite.Suite
	mockBillRepo     *MockBillRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.BillSvcFacade
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewBillService(suite.mockBillRepo, suite.mockEmployeeRepo)
}

func (suite *BillServiceTestSuite) validCreateRequest() dto.CreateBillRequest {
	return dto.CreateBillRequest{
		BillNumber:          "MB-2025-001",
		ReceiptDate:         "2025-04-01",
		EmployeeID:          "EMP-001",
		EmployeeName:        "Ravi Kumar",
		DependentName:       "Sita Kumar",
		Relationship:        "Wife",
		TreatmentPeriodFrom: "2025-03-01",
		TreatmentPeriodTo:   "2025-03-15",
		AmountClaimed:       decimal.NewFromInt(12500),
		Hospital:            "Civil Hospital",
	}
}

// --- CreateBill Tests ---

func (suite *BillServiceTestSuite) TestCreateBill_Success() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	subDivision := domain.SubDivisionWS2
	employee := &domain.Employee{EmployeeID: "EMP-001", Name: "Ravi Kumar", SubDivision: &subDivision}

	suite.mockBillRepo.On("FindBillByNumber", ctx, "MB-2025-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByEmployeeID", ctx, "EMP-001").Return(employee, nil).Once()
	suite.mockBillRepo.On("SaveBill", ctx, mock.MatchedBy(func(b domain.Bill) bool {
		return b.BillNumber == "MB-2025-001" &&
			b.CurrentStatus == "Received From W/S Sub Division No 2" &&
			len(b.StatusHistory) == 1 &&
			b.StatusHistory[0].Status == b.CurrentStatus &&
			b.StatusHistory[0].Remarks != nil &&
			*b.StatusHistory[0].Remarks == domain.DefaultReceivedRemarks
	})).Return(nil).Once()

	created, err := suite.service.CreateBill(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ID)
	// Current status always mirrors the last history entry.
	suite.Equal(created.CurrentStatus, created.StatusHistory[len(created.StatusHistory)-1].Status)
	suite.mockBillRepo.AssertExpectations(suite.T())
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_UnknownEmployeeFallsBack() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	suite.mockBillRepo.On("FindBillByNumber", ctx, "MB-2025-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByEmployeeID", ctx, "EMP-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockBillRepo.On("SaveBill", ctx, mock.MatchedBy(func(b domain.Bill) bool {
		return b.CurrentStatus == "Received From Unknown"
	})).Return(nil).Once()

	created, err := suite.service.CreateBill(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_Duplicate() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	existing := &domain.Bill{BillNumber: "MB-2025-001"}

	suite.mockBillRepo.On("FindBillByNumber", ctx, "MB-2025-001").Return(existing, nil).Once()

	created, err := suite.service.CreateBill(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBill", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestCreateBill_InvalidReceiptDate() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.ReceiptDate = "01-04-2025"

	suite.mockBillRepo.On("FindBillByNumber", ctx, "MB-2025-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByEmployeeID", ctx, "EMP-001").Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateBill(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBill", mock.Anything, mock.Anything)
}

// --- Read Tests ---

func (suite *BillServiceTestSuite) TestListBills_Success() {
	ctx := context.Background()
	expected := []domain.Bill{{ID: uuid.NewString()}, {ID: uuid.NewString()}}

	suite.mockBillRepo.On("FindBills", ctx).Return(expected, nil).Once()

	bills, err := suite.service.ListBills(ctx)

	suite.Require().NoError(err)
	suite.Len(bills, 2)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestGetBillByID_NotFound() {
	ctx := context.Background()
	billID := uuid.NewString()

	suite.mockBillRepo.On("FindBillByID", ctx, billID).Return(nil, apperrors.ErrNotFound).Once()

	bill, err := suite.service.GetBillByID(ctx, billID)

	suite.Require().Error(err)
	suite.Nil(bill)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestGetBillsByEmployee_Success() {
	ctx := context.Background()
	expected := []domain.Bill{{ID: uuid.NewString(), EmployeeID: "EMP-001"}}

	suite.mockBillRepo.On("FindBillsByEmployee", ctx, "EMP-001").Return(expected, nil).Once()

	bills, err := suite.service.GetBillsByEmployee(ctx, "EMP-001")

	suite.Require().NoError(err)
	suite.Len(bills, 1)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

// --- GetBillsByStatus Tests ---

func (suite *BillServiceTestSuite) TestGetBillsByStatus_InvalidStatus() {
	ctx := context.Background()

	bills, err := suite.service.GetBillsByStatus(ctx, "Approved")

	suite.Require().Error(err)
	suite.Nil(bills)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "FindBillsByStatus", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestGetBillsByStatus_Success() {
	ctx := context.Background()
	status := string(domain.BillStatusSentToMS)
	expected := []domain.Bill{{ID: uuid.NewString(), CurrentStatus: status}}

	suite.mockBillRepo.On("FindBillsByStatus", ctx, status).Return(expected, nil).Once()

	bills, err := suite.service.GetBillsByStatus(ctx, status)

	suite.Require().NoError(err)
	suite.Len(bills, 1)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

// --- UpdateBillStatus Tests ---

func (suite *BillServiceTestSuite) TestUpdateBillStatus_InvalidStatus() {
	ctx := context.Background()
	billID := uuid.NewString()
	req := dto.UpdateBillStatusRequest{Status: "Approved"}

	err := suite.service.UpdateBillStatus(ctx, billID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
	// An invalid status must leave the store untouched.
	suite.mockBillRepo.AssertNotCalled(suite.T(), "AppendBillStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestUpdateBillStatus_Success() {
	ctx := context.Background()
	billID := uuid.NewString()
	refNum := "MS-REF-42"
	approved := decimal.NewFromInt(10000)
	req := dto.UpdateBillStatusRequest{
		Status:          string(domain.BillStatusReceivedFromMS),
		Date:            strPtr("2025-05-10"),
		ReferenceNumber: &refNum,
		ApprovedAmount:  &approved,
	}

	suite.mockBillRepo.On("AppendBillStatus", ctx, billID, mock.MatchedBy(func(u domain.StatusUpdate) bool {
		return u.Status == string(domain.BillStatusReceivedFromMS) &&
			u.Date.Year() == 2025 && u.Date.Month() == time.May &&
			u.ReferenceNumber != nil && *u.ReferenceNumber == refNum &&
			u.ApprovedAmount != nil && u.ApprovedAmount.Equal(approved)
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.UpdateBillStatus(ctx, billID, req)

	suite.Require().NoError(err)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestUpdateBillStatus_DateDefaultsToNow() {
	ctx := context.Background()
	billID := uuid.NewString()
	req := dto.UpdateBillStatusRequest{Status: string(domain.BillStatusRejected)}
	before := time.Now().UTC()

	suite.mockBillRepo.On("AppendBillStatus", ctx, billID, mock.MatchedBy(func(u domain.StatusUpdate) bool {
		return u.Status == string(domain.BillStatusRejected) && !u.Date.Before(before)
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.UpdateBillStatus(ctx, billID, req)

	suite.Require().NoError(err)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestUpdateBillStatus_NotFound() {
	ctx := context.Background()
	billID := uuid.NewString()
	req := dto.UpdateBillStatusRequest{Status: string(domain.BillStatusSentToCO)}

	suite.mockBillRepo.On("AppendBillStatus", ctx, billID, mock.AnythingOfType("domain.StatusUpdate"), mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.UpdateBillStatus(ctx, billID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

// --- UpdateBill Tests ---

func (suite *BillServiceTestSuite) TestUpdateBill_BuildsFieldMapFromPresentFields() {
	ctx := context.Background()
	billID := uuid.NewString()
	amount := decimal.NewFromInt(9999)
	req := dto.UpdateBillRequest{
		Hospital:      strPtr("PGI Chandigarh"),
		ReceiptDate:   strPtr("2025-04-02"),
		AmountClaimed: &amount,
	}

	suite.mockBillRepo.On("UpdateBillFields", ctx, billID, mock.MatchedBy(func(fields map[string]any) bool {
		if len(fields) != 3 {
			return false
		}
		if fields["hospital"] != "PGI Chandigarh" {
			return false
		}
		if _, ok := fields["receipt_date"].(time.Time); !ok {
			return false
		}
		got, ok := fields["amount_claimed"].(decimal.Decimal)
		return ok && got.Equal(amount)
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.UpdateBill(ctx, billID, req)

	suite.Require().NoError(err)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

// --- FilterBills Tests ---

func (suite *BillServiceTestSuite) TestFilterBills_ConvertsCriteria() {
	ctx := context.Background()
	amountFrom := decimal.NewFromInt(1000)
	req := dto.FilterBillsRequest{
		EmployeeName: "kumar",
		Status:       string(domain.BillStatusSentToCO),
		ReferenceSearch: &dto.ReferenceSearch{
			Number: "CO-REF",
			Status: string(domain.BillStatusSentToCO),
		},
		DateFrom:   "2025-01-01",
		AmountFrom: &amountFrom,
	}

	suite.mockBillRepo.On("FilterBills", ctx, mock.MatchedBy(func(f domain.BillFilter) bool {
		return f.EmployeeName == "kumar" &&
			f.Status == string(domain.BillStatusSentToCO) &&
			f.ReferenceNumber == "CO-REF" &&
			f.ReferenceStatus == string(domain.BillStatusSentToCO) &&
			f.DateFrom != nil && f.DateFrom.Year() == 2025 &&
			f.DateTo == nil &&
			f.AmountFrom != nil && f.AmountFrom.Equal(amountFrom)
	})).Return([]domain.Bill{}, nil).Once()

	bills, err := suite.service.FilterBills(ctx, req)

	suite.Require().NoError(err)
	suite.Empty(bills)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestFilterBills_EmptyReferenceNumberIgnored() {
	ctx := context.Background()
	req := dto.FilterBillsRequest{
		ReferenceSearch: &dto.ReferenceSearch{Number: "", Status: string(domain.BillStatusSentToCO)},
	}

	suite.mockBillRepo.On("FilterBills", ctx, mock.MatchedBy(func(f domain.BillFilter) bool {
		return f.ReferenceNumber == "" && f.ReferenceStatus == ""
	})).Return([]domain.Bill{}, nil).Once()

	_, err := suite.service.FilterBills(ctx, req)

	suite.Require().NoError(err)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestFilterBills_InvalidDate() {
	ctx := context.Background()
	req := dto.FilterBillsRequest{DateFrom: "bad"}

	bills, err := suite.service.FilterBills(ctx, req)

	suite.Require().Error(err)
	suite.Nil(bills)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "FilterBills", mock.Anything, mock.Anything)
}

// --- DeleteBill Tests ---

func (suite *BillServiceTestSuite) TestDeleteBill_RepoError() {
	ctx := context.Background()
	billID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockBillRepo.On("DeleteBill", ctx, billID).Return(expectedErr).Once()

	err := suite.service.DeleteBill(ctx, billID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestBillService(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
