package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gwssd/medical_bills_app/internal/apperrors"
	"github.com/gwssd/medical_bills_app/internal/core/domain"
	portsrepo "github.com/gwssd/medical_bills_app/internal/core/ports/repositories"
	portssvc "github.com/gwssd/medical_bills_app/internal/core/ports/services"
	"github.com/gwssd/medical_bills_app/internal/core/services"
	"github.com/gwssd/medical_bills_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) SearchEmployeesByName(ctx context.Context, name string) ([]domain.Employee, error) {
	args := m.Called(ctx, name)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployeeFields(ctx context.Context, employeeID string, fields map[string]any, updatedAt time.Time) error {
	args := m.Called(ctx, employeeID, fields, updatedAt)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

var _ portsrepo.EmployeeRepositoryFacade = (*MockEmployeeRepository)(nil)

// --- Test Suite ---
type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(suite.mockEmployeeRepo)
}

func strPtr(s string) *string { return &s }

// --- CreateEmployee Tests ---

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		EmployeeID:  "EMP-001",
		Name:        "Ravi Kumar",
		SubDivision: strPtr(domain.SubDivisionWS2),
		Dependents: []dto.DependentRequest{
			{Name: "Sita Kumar", Relation: "Wife"},
		},
	}

	suite.mockEmployeeRepo.On("FindEmployeeByEmployeeID", ctx, "EMP-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.EmployeeID == "EMP-001" &&
			e.Status == domain.EmployeeStatusWorking &&
			e.LifeStatus == domain.LifeStatusAlive &&
			len(e.Dependents) == 2 &&
			e.Dependents[0].Name == "Ravi Kumar" &&
			e.Dependents[0].Relation == domain.DependentRelationSelf &&
			e.Dependents[1].Relation == "Wife"
	})).Return(nil).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ID)
	suite.Equal("Ravi Kumar", created.Name)
	// The employee themself must always lead the dependent list.
	suite.Equal(domain.DependentRelationSelf, created.Dependents[0].Relation)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_SelfSeededWithoutOtherDependents() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{EmployeeID: "EMP-002", Name: "Mohan Lal"}

	suite.mockEmployeeRepo.On("FindEmployeeByEmployeeID", ctx, "EMP-002").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return len(e.Dependents) == 1 &&
			e.Dependents[0] == domain.Dependent{Name: "Mohan Lal", Relation: domain.DependentRelationSelf}
	})).Return(nil).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Duplicate() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{EmployeeID: "EMP-001", Name: "Ravi Kumar"}
	existing := &domain.Employee{EmployeeID: "EMP-001", Name: "Ravi Kumar"}

	suite.mockEmployeeRepo.On("FindEmployeeByEmployeeID", ctx, "EMP-001").Return(existing, nil).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_InvalidRetirementDate() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		EmployeeID:     "EMP-003",
		Name:           "Prem Singh",
		RetirementDate: strPtr("not-a-date"),
	}

	suite.mockEmployeeRepo.On("FindEmployeeByEmployeeID", ctx, "EMP-003").Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_SaveError() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{EmployeeID: "EMP-004", Name: "Suresh"}
	expectedErr := assert.AnError

	suite.mockEmployeeRepo.On("FindEmployeeByEmployeeID", ctx, "EMP-004").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("SaveEmployee", ctx, mock.AnythingOfType("domain.Employee")).Return(expectedErr).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

// --- Read Tests ---

func (suite *EmployeeServiceTestSuite) TestListEmployees_Success() {
	ctx := context.Background()
	expected := []domain.Employee{{EmployeeID: "EMP-001"}, {EmployeeID: "EMP-002"}}

	suite.mockEmployeeRepo.On("FindEmployees", ctx).Return(expected, nil).Once()

	employees, err := suite.service.ListEmployees(ctx)

	suite.Require().NoError(err)
	suite.Len(employees, 2)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestSearchEmployees_Success() {
	ctx := context.Background()
	expected := []domain.Employee{{EmployeeID: "EMP-001", Name: "Ravi Kumar"}}

	suite.mockEmployeeRepo.On("SearchEmployeesByName", ctx, "kumar").Return(expected, nil).Once()

	employees, err := suite.service.SearchEmployees(ctx, "kumar")

	suite.Require().NoError(err)
	suite.Len(employees, 1)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestGetEmployeeByID_NotFound() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByEmployeeID", ctx, "EMP-404").Return(nil, apperrors.ErrNotFound).Once()

	employee, err := suite.service.GetEmployeeByID(ctx, "EMP-404")

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

// --- UpdateEmployee Tests ---

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_BuildsFieldMapFromPresentFields() {
	ctx := context.Background()
	req := dto.UpdateEmployeeRequest{
		Name:           strPtr("Ravi K"),
		Status:         strPtr("RETIRED"),
		RetirementDate: strPtr("2025-03-31"),
		Dependents:     &[]dto.DependentRequest{{Name: "Ravi K", Relation: "Self"}},
	}

	suite.mockEmployeeRepo.On("UpdateEmployeeFields", ctx, "EMP-001", mock.MatchedBy(func(fields map[string]any) bool {
		if len(fields) != 4 {
			return false
		}
		if fields["name"] != "Ravi K" || fields["status"] != "RETIRED" {
			return false
		}
		t, ok := fields["retirement_date"].(time.Time)
		if !ok || t.Year() != 2025 || t.Month() != time.March {
			return false
		}
		deps, ok := fields["dependents"].([]domain.Dependent)
		return ok && len(deps) == 1
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.UpdateEmployee(ctx, "EMP-001", req)

	suite.Require().NoError(err)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_InvalidDate() {
	ctx := context.Background()
	req := dto.UpdateEmployeeRequest{DeathDate: strPtr("31/03/2025")}

	err := suite.service.UpdateEmployee(ctx, "EMP-001", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "UpdateEmployeeFields", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_NotFound() {
	ctx := context.Background()
	req := dto.UpdateEmployeeRequest{Name: strPtr("Nobody")}

	suite.mockEmployeeRepo.On("UpdateEmployeeFields", ctx, "EMP-404", mock.Anything, mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.UpdateEmployee(ctx, "EMP-404", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

// --- DeactivateEmployee Tests ---

func (suite *EmployeeServiceTestSuite) TestDeactivateEmployee_SetsRetiredStatus() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("UpdateEmployeeFields", ctx, "EMP-001", map[string]any{"status": "RETIRED"}, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateEmployee(ctx, "EMP-001")

	suite.Require().NoError(err)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

// --- DeleteEmployee Tests ---

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_Success() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("DeleteEmployee", ctx, "EMP-001").Return(nil).Once()

	err := suite.service.DeleteEmployee(ctx, "EMP-001")

	suite.Require().NoError(err)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_NotFound() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("DeleteEmployee", ctx, "EMP-404").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEmployee(ctx, "EMP-404")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestEmployeeService(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
