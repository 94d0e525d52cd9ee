package mapping

import (
	"github.com/gwssd/medical_bills_app/internal/core/domain"
	"github.com/gwssd/medical_bills_app/internal/models"
)

// ToModelEmployee converts a domain Employee to its storage model.
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		ID:             d.ID,
		EmployeeID:     d.EmployeeID,
		Name:           d.Name,
		FatherName:     d.FatherName,
		Designation:    d.Designation,
		Status:         string(d.Status),
		SubDivision:    d.SubDivision,
		Phone:          d.Phone,
		BankAccount:    d.BankAccount,
		BankName:       d.BankName,
		BankBranch:     d.BankBranch,
		RetirementDate: d.RetirementDate,
		LifeStatus:     string(d.LifeStatus),
		DeathDate:      d.DeathDate,
		Dependents:     ToModelDependents(d.Dependents),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToDomainEmployee converts a storage model Employee to its domain form.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		ID:             m.ID,
		EmployeeID:     m.EmployeeID,
		Name:           m.Name,
		FatherName:     m.FatherName,
		Designation:    m.Designation,
		Status:         domain.EmployeeStatus(m.Status),
		SubDivision:    m.SubDivision,
		Phone:          m.Phone,
		BankAccount:    m.BankAccount,
		BankName:       m.BankName,
		BankBranch:     m.BankBranch,
		RetirementDate: m.RetirementDate,
		LifeStatus:     domain.LifeStatus(m.LifeStatus),
		DeathDate:      m.DeathDate,
		Dependents:     ToDomainDependents(m.Dependents),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToDomainEmployeeSlice converts a slice of model employees to domain form.
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}

// ToModelDependents converts domain dependents to their JSONB storage shape.
func ToModelDependents(ds []domain.Dependent) []models.Dependent {
	ms := make([]models.Dependent, len(ds))
	for i, d := range ds {
		ms[i] = models.Dependent{Name: d.Name, Relation: d.Relation}
	}
	return ms
}

// ToDomainDependents converts stored dependents to domain form.
func ToDomainDependents(ms []models.Dependent) []domain.Dependent {
	ds := make([]domain.Dependent, len(ms))
	for i, m := range ms {
		ds[i] = domain.Dependent{Name: m.Name, Relation: m.Relation}
	}
	return ds
}
