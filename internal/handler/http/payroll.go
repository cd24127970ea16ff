package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/payroll"
	"github.com/David-Smile/cloud-payroll-demo/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Process implements PayrollHandler.
func (h *PayrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Process payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeId")

	result, err := h.payrollService.ProcessPayroll(r.Context(), req)
	if err != nil {
		slog.Error("Process payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll processed successfully", result)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter payroll.ListFilter

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if period := r.URL.Query().Get("period"); period != "" {
		filter.Period = &period
	}

	result, err := h.payrollService.ListPayrolls(r.Context(), filter)
	if err != nil {
		slog.Error("List payrolls service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
