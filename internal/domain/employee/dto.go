package employee

import (
	"time"

	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Position   string           `json:"position"`
	Department string           `json:"department"`
	BaseSalary decimal.Decimal  `json:"base_salary"`
	TaxRate    decimal.Decimal  `json:"tax_rate"`
	Bonuses    *decimal.Decimal `json:"bonuses"`
	Deductions *decimal.Decimal `json:"deductions"`
	Status     string           `json:"status"`
	JoinDate   string           `json:"join_date"`
}

// Validate aggregates every violated field into one error value, not just
// the first.
func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	} else if !Department(r.Department).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of Engineering, Finance, HR, Sales, Marketing, Operations",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}
	if r.TaxRate.IsNegative() || r.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_rate",
			Message: "tax_rate must be between 0 and 100",
		})
	}
	if r.Bonuses != nil && r.Bonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "bonuses",
			Message: "bonuses must not be negative",
		})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}

	if !validator.IsEmpty(r.Status) && !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Active, Inactive, On Leave",
		})
	}

	if !validator.IsEmpty(r.JoinDate) {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Name       *string          `json:"name"`
	Email      *string          `json:"email"`
	Position   *string          `json:"position"`
	Department *string          `json:"department"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
	TaxRate    *decimal.Decimal `json:"tax_rate"`
	Bonuses    *decimal.Decimal `json:"bonuses"`
	Deductions *decimal.Decimal `json:"deductions"`
	Status     *string          `json:"status"`
	JoinDate   *string          `json:"join_date"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must not be empty",
		})
	}
	if r.Department != nil && !Department(*r.Department).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of Engineering, Finance, HR, Sales, Marketing, Operations",
		})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}
	if r.TaxRate != nil && (r.TaxRate.IsNegative() || r.TaxRate.GreaterThan(decimal.NewFromInt(100))) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_rate",
			Message: "tax_rate must be between 0 and 100",
		})
	}
	if r.Bonuses != nil && r.Bonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "bonuses",
			Message: "bonuses must not be negative",
		})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}
	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Active, Inactive, On Leave",
		})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Position   string          `json:"position"`
	Department Department      `json:"department"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	Bonuses    decimal.Decimal `json:"bonuses"`
	Deductions decimal.Decimal `json:"deductions"`
	Status     Status          `json:"status"`
	CreatedBy  string          `json:"created_by"`
	JoinDate   time.Time       `json:"join_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		BaseSalary: e.BaseSalary,
		TaxRate:    e.TaxRate,
		Bonuses:    e.Bonuses,
		Deductions: e.Deductions,
		Status:     e.Status,
		CreatedBy:  e.CreatedBy,
		JoinDate:   e.JoinDate,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
