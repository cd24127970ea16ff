package payroll

import "context"

type PayrollService interface {
	ProcessPayroll(ctx context.Context, req ProcessPayrollRequest) (PayrollRecordResponse, error)
	ListPayrolls(ctx context.Context, filter ListFilter) ([]PayrollRecordResponse, error)
}
