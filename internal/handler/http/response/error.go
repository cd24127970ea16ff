package response

import (
	"errors"
	"net/http"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/auth"
	"github.com/David-Smile/cloud-payroll-demo/internal/domain/employee"
	"github.com/David-Smile/cloud-payroll-demo/internal/domain/payroll"
	"github.com/David-Smile/cloud-payroll-demo/internal/domain/user"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything without an
// explicit mapping surfaces as a generic internal error; the detail stays
// in server logs only.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors. Malformed, mis-signed, and expired tokens are
	// deliberately indistinguishable to the caller.
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired credential")
	case errors.Is(err, auth.ErrRoleMismatch):
		Forbidden(w, "Role does not match the registered account")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyProcessed):
		Conflict(w, "Payroll already processed for this period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
