package models

import "time"

// Dependent is the JSONB element shape stored in employees.dependents.
type Dependent struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
}

// Employee is the storage representation of an employee row.
type Employee struct {
	ID             string      `db:"id"`
	EmployeeID     string      `db:"employee_id"`
	Name           string      `db:"name"`
	FatherName     *string     `db:"father_name"`
	Designation    *string     `db:"designation"`
	Status         string      `db:"status"`
	SubDivision    *string     `db:"sub_division"`
	Phone          *string     `db:"phone"`
	BankAccount    *string     `db:"bank_account"`
	BankName       *string     `db:"bank_name"`
	BankBranch     *string     `db:"bank_branch"`
	RetirementDate *time.Time  `db:"retirement_date"`
	LifeStatus     string      `db:"life_status"`
	DeathDate      *time.Time  `db:"death_date"`
	Dependents     []Dependent `db:"dependents"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}
