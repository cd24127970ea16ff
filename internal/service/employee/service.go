package employee

import (
	"context"
	"time"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/auth"
	"github.com/David-Smile/cloud-payroll-demo/internal/domain/employee"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Helper to get the acting user id from the verified JWT context. Employee
// records carry it as an audit back-reference.
func claimsUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	createdBy, err := claimsUserID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := employee.Status(req.Status)
	if req.Status == "" {
		status = employee.StatusActive
	}

	joinDate := time.Now().Truncate(24 * time.Hour)
	if req.JoinDate != "" {
		joinDate, _ = validator.IsValidDate(req.JoinDate)
	}

	bonuses := decimal.Zero
	if req.Bonuses != nil {
		bonuses = *req.Bonuses
	}
	deductions := decimal.Zero
	if req.Deductions != nil {
		deductions = *req.Deductions
	}

	newEmployee := employee.Employee{
		Name:       req.Name,
		Email:      validator.NormalizeEmail(req.Email),
		Position:   req.Position,
		Department: employee.Department(req.Department),
		BaseSalary: req.BaseSalary,
		TaxRate:    req.TaxRate,
		Bonuses:    bonuses,
		Deductions: deductions,
		Status:     status,
		CreatedBy:  createdBy,
		JoinDate:   joinDate,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil {
		normalized := validator.NormalizeEmail(*req.Email)
		req.Email = &normalized
	}

	updated, err := s.employeeRepo.Update(ctx, id, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
