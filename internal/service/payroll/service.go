package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/employee"
	"github.com/David-Smile/cloud-payroll-demo/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

// ProcessPayroll implements payroll.PayrollService. The period pre-check is
// advisory; the repository's uniqueness guarantee on (employee, period) is
// what keeps concurrent calls from creating duplicate records.
func (s *PayrollServiceImpl) ProcessPayroll(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	employeeData, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PayrollRecordResponse{}, payroll.ErrEmployeeNotFound
		}
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	_, err = s.payrollRepo.GetByEmployeePeriod(ctx, req.EmployeeID, req.Period)
	if err == nil {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollAlreadyProcessed
	}
	if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to check existing payroll record: %w", err)
	}

	calc := payroll.Calculate(employeeData)
	if calc.NetNegative() {
		// Data-quality signal, not a calculation failure (deductions exceed
		// post-tax pay). The record is still created.
		slog.Warn("negative net salary computed",
			"employee_id", employeeData.ID,
			"period", req.Period,
			"net_salary", calc.NetSalary.String(),
		)
	}

	record := payroll.PayrollRecord{
		EmployeeID:     employeeData.ID,
		Period:         req.Period,
		GrossSalary:    calc.GrossSalary,
		TaxAmount:      calc.TaxAmount,
		NetSalary:      calc.NetSalary,
		Bonuses:        employeeData.Bonuses,
		Deductions:     employeeData.Deductions,
		TaxRateApplied: employeeData.TaxRate,
		ProcessedAt:    time.Now(),
	}

	created, err := s.payrollRepo.Create(ctx, record)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	created.EmployeeName = &employeeData.Name
	created.EmployeeEmail = &employeeData.Email

	return payroll.ToResponse(created), nil
}

// ListPayrolls implements payroll.PayrollService. Records come back ordered
// by processing time, newest first, with employee identity resolved.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayrollRecordResponse, error) {
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, payroll.ToResponse(rec))
	}
	return responses, nil
}
