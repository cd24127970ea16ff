package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	Name       string
	Email      string
	Position   string
	Department Department
	BaseSalary decimal.Decimal
	TaxRate    decimal.Decimal
	Bonuses    decimal.Decimal
	Deductions decimal.Decimal
	Status     Status
	CreatedBy  string // audit back-reference to the identity that created the record
	JoinDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentFinance     Department = "Finance"
	DepartmentHR          Department = "HR"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentOperations  Department = "Operations"
)

// Departments lists the closed set of valid departments.
var Departments = []Department{
	DepartmentEngineering,
	DepartmentFinance,
	DepartmentHR,
	DepartmentSales,
	DepartmentMarketing,
	DepartmentOperations,
}

func (d Department) IsValid() bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusOnLeave  Status = "On Leave"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive || s == StatusOnLeave
}
