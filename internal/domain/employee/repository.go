package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	Department *Department
	Status     *Status
}
