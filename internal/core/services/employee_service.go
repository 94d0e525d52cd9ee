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

type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates the employee service backed by the given repository.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	existing, err := s.employeeRepo.FindEmployeeByEmployeeID(ctx, req.EmployeeID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing employee: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("employee ID %s: %w", req.EmployeeID, apperrors.ErrDuplicate)
	}

	status := domain.EmployeeStatusWorking
	if req.Status != nil && *req.Status != "" {
		status = domain.EmployeeStatus(*req.Status)
	}
	lifeStatus := domain.LifeStatusAlive
	if req.LifeStatus != nil && *req.LifeStatus != "" {
		lifeStatus = domain.LifeStatus(*req.LifeStatus)
	}

	retirementDate, err := parseOptionalDate(req.RetirementDate)
	if err != nil {
		return nil, err
	}
	deathDate, err := parseOptionalDate(req.DeathDate)
	if err != nil {
		return nil, err
	}

	// The employee themself is always the first dependent.
	dependents := append(
		[]domain.Dependent{{Name: req.Name, Relation: domain.DependentRelationSelf}},
		dto.ToDomainDependents(req.Dependents)...,
	)

	now := time.Now().UTC()
	employee := domain.Employee{
		ID:             uuid.NewString(),
		EmployeeID:     req.EmployeeID,
		Name:           req.Name,
		FatherName:     req.FatherName,
		Designation:    req.Designation,
		Status:         status,
		SubDivision:    req.SubDivision,
		Phone:          req.Phone,
		BankAccount:    req.BankAccount,
		BankName:       req.BankName,
		BankBranch:     req.BankBranch,
		RetirementDate: retirementDate,
		LifeStatus:     lifeStatus,
		DeathDate:      deathDate,
		Dependents:     dependents,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}
	return &employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) SearchEmployees(ctx context.Context, name string) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.SearchEmployeesByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) error {
	fields := map[string]any{}
	setString := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	setString("name", req.Name)
	setString("father_name", req.FatherName)
	setString("designation", req.Designation)
	setString("status", req.Status)
	setString("sub_division", req.SubDivision)
	setString("phone", req.Phone)
	setString("bank_account", req.BankAccount)
	setString("bank_name", req.BankName)
	setString("bank_branch", req.BankBranch)
	setString("life_status", req.LifeStatus)

	if req.RetirementDate != nil {
		t, err := dto.ParseDate(*req.RetirementDate)
		if err != nil {
			return err
		}
		fields["retirement_date"] = t
	}
	if req.DeathDate != nil {
		t, err := dto.ParseDate(*req.DeathDate)
		if err != nil {
			return err
		}
		fields["death_date"] = t
	}
	if req.Dependents != nil {
		fields["dependents"] = dto.ToDomainDependents(*req.Dependents)
	}

	return s.employeeRepo.UpdateEmployeeFields(ctx, employeeID, fields, time.Now().UTC())
}

func (s *employeeService) DeactivateEmployee(ctx context.Context, employeeID string) error {
	fields := map[string]any{"status": string(domain.EmployeeStatusRetired)}
	return s.employeeRepo.UpdateEmployeeFields(ctx, employeeID, fields, time.Now().UTC())
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	return s.employeeRepo.DeleteEmployee(ctx, employeeID)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := dto.ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
