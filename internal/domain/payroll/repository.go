package payroll

import "context"

type PayrollRepository interface {
	// Create persists a new record. The (EmployeeID, Period) pair is
	// enforced unique at the persistence boundary; a duplicate insert
	// returns ErrPayrollAlreadyProcessed even under concurrent callers.
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID, period string) (PayrollRecord, error)
	List(ctx context.Context, filter ListFilter) ([]PayrollRecord, error)
}

type ListFilter struct {
	EmployeeID *string
	Period     *string
}
