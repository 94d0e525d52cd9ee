package dto

import (
	"github.com/gwssd/medical_bills_app/internal/core/domain"
)

// DependentRequest is a caller-supplied dependent entry.
type DependentRequest struct {
	Name     string `json:"name" binding:"required"`
	Relation string `json:"relation" binding:"required"`
}

// CreateEmployeeRequest defines the data accepted when registering an employee.
// Only employee_id and name are required; everything else is optional and
// sub_division deliberately accepts any value.
type CreateEmployeeRequest struct {
	EmployeeID     string             `json:"employee_id" binding:"required"`
	Name           string             `json:"name" binding:"required"`
	FatherName     *string            `json:"father_name"`
	Designation    *string            `json:"designation"`
	Status         *string            `json:"status"`
	SubDivision    *string            `json:"sub_division"`
	Phone          *string            `json:"phone"`
	BankAccount    *string            `json:"bank_account"`
	BankName       *string            `json:"bank_name"`
	BankBranch     *string            `json:"bank_branch"`
	RetirementDate *string            `json:"retirement_date"`
	LifeStatus     *string            `json:"life_status"`
	DeathDate      *string            `json:"death_date"`
	Dependents     []DependentRequest `json:"dependents"`
}

// UpdateEmployeeRequest defines the data allowed for a partial employee
// update. Pointers differentiate omitted fields from zero values; omitted
// fields are left untouched. The business key itself is not updatable.
type UpdateEmployeeRequest struct {
	Name           *string             `json:"name"`
	FatherName     *string             `json:"father_name"`
	Designation    *string             `json:"designation"`
	Status         *string             `json:"status"`
	SubDivision    *string             `json:"sub_division"`
	Phone          *string             `json:"phone"`
	BankAccount    *string             `json:"bank_account"`
	BankName       *string             `json:"bank_name"`
	BankBranch     *string             `json:"bank_branch"`
	RetirementDate *string             `json:"retirement_date"`
	LifeStatus     *string             `json:"life_status"`
	DeathDate      *string             `json:"death_date"`
	Dependents     *[]DependentRequest `json:"dependents"`
}

// EmployeeResponse is the wire form of an employee.
type EmployeeResponse struct {
	ID             string             `json:"id"`
	EmployeeID     string             `json:"employee_id"`
	Name           string             `json:"name"`
	FatherName     *string            `json:"father_name"`
	Designation    *string            `json:"designation"`
	Status         string             `json:"status"`
	SubDivision    *string            `json:"sub_division"`
	Phone          *string            `json:"phone"`
	BankAccount    *string            `json:"bank_account"`
	BankName       *string            `json:"bank_name"`
	BankBranch     *string            `json:"bank_branch"`
	RetirementDate *string            `json:"retirement_date"`
	LifeStatus     string             `json:"life_status"`
	DeathDate      *string            `json:"death_date"`
	Dependents     []domain.Dependent `json:"dependents"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

// ToEmployeeResponse converts a domain.Employee to its wire form.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeID:     e.EmployeeID,
		Name:           e.Name,
		FatherName:     e.FatherName,
		Designation:    e.Designation,
		Status:         string(e.Status),
		SubDivision:    e.SubDivision,
		Phone:          e.Phone,
		BankAccount:    e.BankAccount,
		BankName:       e.BankName,
		BankBranch:     e.BankBranch,
		RetirementDate: FormatDatePtr(e.RetirementDate),
		LifeStatus:     string(e.LifeStatus),
		DeathDate:      FormatDatePtr(e.DeathDate),
		Dependents:     e.Dependents,
		CreatedAt:      FormatDate(e.CreatedAt),
		UpdatedAt:      FormatDate(e.UpdatedAt),
	}
}

// ToEmployeeResponseSlice converts a slice of domain employees to wire form.
func ToEmployeeResponseSlice(es []domain.Employee) []EmployeeResponse {
	rs := make([]EmployeeResponse, len(es))
	for i := range es {
		rs[i] = ToEmployeeResponse(&es[i])
	}
	return rs
}

// ToDomainDependents converts request dependents to domain form.
func ToDomainDependents(ds []DependentRequest) []domain.Dependent {
	out := make([]domain.Dependent, len(ds))
	for i, d := range ds {
		out[i] = domain.Dependent{Name: d.Name, Relation: d.Relation}
	}
	return out
}
