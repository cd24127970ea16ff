package payroll

import (
	"time"

	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ProcessPayrollRequest struct {
	EmployeeID string `json:"-"`
	Period     string `json:"period"`
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period is required",
		})
	} else if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be a month key in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollRecordResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   *string         `json:"employee_name,omitempty"`
	EmployeeEmail  *string         `json:"employee_email,omitempty"`
	Period         string          `json:"period"`
	GrossSalary    decimal.Decimal `json:"gross_salary"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	NetSalary      decimal.Decimal `json:"net_salary"`
	Bonuses        decimal.Decimal `json:"bonuses"`
	Deductions     decimal.Decimal `json:"deductions"`
	TaxRateApplied decimal.Decimal `json:"tax_rate_applied"`
	ProcessedAt    time.Time       `json:"processed_at"`
}

func ToResponse(rec PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeName,
		EmployeeEmail:  rec.EmployeeEmail,
		Period:         rec.Period,
		GrossSalary:    rec.GrossSalary,
		TaxAmount:      rec.TaxAmount,
		NetSalary:      rec.NetSalary,
		Bonuses:        rec.Bonuses,
		Deductions:     rec.Deductions,
		TaxRateApplied: rec.TaxRateApplied,
		ProcessedAt:    rec.ProcessedAt,
	}
}
