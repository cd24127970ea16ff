package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord is a processed payroll result for one employee and one
// period month key. At most one record exists per (EmployeeID, Period);
// monetary fields are immutable once the record is created. Corrections
// require a new record, never an in-place edit.
type PayrollRecord struct {
	ID             string
	EmployeeID     string
	Period         string // month key, e.g. "2024-01"
	GrossSalary    decimal.Decimal
	TaxAmount      decimal.Decimal
	NetSalary      decimal.Decimal
	Bonuses        decimal.Decimal
	Deductions     decimal.Decimal
	TaxRateApplied decimal.Decimal
	ProcessedAt    time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
}
