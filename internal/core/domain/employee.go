package domain

import "time"

// EmployeeStatus represents the employment state of an employee.
type EmployeeStatus string

const (
	EmployeeStatusWorking EmployeeStatus = "WORKING"
	EmployeeStatusRetired EmployeeStatus = "RETIRED"
)

// LifeStatus represents whether an employee is alive or deceased.
type LifeStatus string

const (
	LifeStatusAlive    LifeStatus = "ALIVE"
	LifeStatusDeceased LifeStatus = "DECEASED"
)

// Known subdivision names. These are informational only: sub_division is a
// free-form string and is deliberately never validated against this set.
const (
	SubDivisionSewerage1 = "Sewarage Sub Division No 1"
	SubDivisionWS2       = "W/S Sub Division No 2"
	SubDivisionWS6       = "W/S Sub Division No 6"
	SubDivisionPH3       = "PH Division Number 3"
	SubDivisionOther     = "Other"
)

// DependentRelationSelf is the relation of the auto-seeded first dependent.
const DependentRelationSelf = "Self"

// Dependent is a family member covered under an employee's medical benefits.
type Dependent struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
}

// Employee is a subdivision employee (working or retired) whose medical bills
// are tracked by the office. Dependents[0] is always the employee themself
// with relation "Self".
type Employee struct {
	ID             string
	EmployeeID     string
	Name           string
	FatherName     *string
	Designation    *string
	Status         EmployeeStatus
	SubDivision    *string
	Phone          *string
	BankAccount    *string
	BankName       *string
	BankBranch     *string
	RetirementDate *time.Time
	LifeStatus     LifeStatus
	DeathDate      *time.Time
	Dependents     []Dependent
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
