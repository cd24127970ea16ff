package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/employee"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/validator"
	"github.com/google/uuid"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepository) List(_ context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var employees []employee.Employee
	for _, e := range r.employees {
		if filter.Department != nil && e.Department != *filter.Department {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].Name < employees[j].Name
	})

	return employees, nil
}

func (r *EmployeeRepository) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := validator.NormalizeEmail(newEmployee.Email)
	for _, e := range r.employees {
		if validator.NormalizeEmail(e.Email) == email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.NewString()
	}
	now := time.Now()
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now
	r.employees[newEmployee.ID] = newEmployee

	return newEmployee, nil
}

func (r *EmployeeRepository) Update(_ context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	if req.Email != nil {
		email := validator.NormalizeEmail(*req.Email)
		for otherID, other := range r.employees {
			if otherID != id && validator.NormalizeEmail(other.Email) == email {
				return employee.Employee{}, employee.ErrEmailExists
			}
		}
		e.Email = *req.Email
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.Department != nil {
		e.Department = employee.Department(*req.Department)
	}
	if req.BaseSalary != nil {
		e.BaseSalary = *req.BaseSalary
	}
	if req.TaxRate != nil {
		e.TaxRate = *req.TaxRate
	}
	if req.Bonuses != nil {
		e.Bonuses = *req.Bonuses
	}
	if req.Deductions != nil {
		e.Deductions = *req.Deductions
	}
	if req.Status != nil {
		e.Status = employee.Status(*req.Status)
	}
	if req.JoinDate != nil {
		if joinDate, ok := validator.IsValidDate(*req.JoinDate); ok {
			e.JoinDate = joinDate
		}
	}
	e.UpdatedAt = time.Now()
	r.employees[id] = e

	return e, nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)

	return nil
}
