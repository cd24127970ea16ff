package payroll

import "errors"

var (
	ErrPayrollRecordNotFound   = errors.New("payroll record not found")
	ErrPayrollAlreadyProcessed = errors.New("payroll already processed for this period")
	ErrEmployeeNotFound        = errors.New("employee not found")
)
