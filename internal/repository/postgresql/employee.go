package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/employee"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/database"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, position, department, base_salary, tax_rate,
			   bonuses, deductions, status, created_by, join_date, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Email, &e.Position, &e.Department, &e.BaseSalary, &e.TaxRate,
		&e.Bonuses, &e.Deductions, &e.Status, &e.CreatedBy, &e.JoinDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, position, department, base_salary, tax_rate,
			   bonuses, deductions, status, created_by, join_date, created_at, updated_at
		FROM employees
	`
	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.Department != nil {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Email, &e.Position, &e.Department, &e.BaseSalary, &e.TaxRate,
			&e.Bonuses, &e.Deductions, &e.Status, &e.CreatedBy, &e.JoinDate, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (
			id, name, email, position, department, base_salary, tax_rate,
			bonuses, deductions, status, created_by, join_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, name, email, position, department, base_salary, tax_rate,
			bonuses, deductions, status, created_by, join_date, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.Name, newEmployee.Email, newEmployee.Position,
		newEmployee.Department, newEmployee.BaseSalary, newEmployee.TaxRate,
		newEmployee.Bonuses, newEmployee.Deductions, newEmployee.Status,
		newEmployee.CreatedBy, newEmployee.JoinDate,
	).Scan(
		&created.ID, &created.Name, &created.Email, &created.Position, &created.Department,
		&created.BaseSalary, &created.TaxRate, &created.Bonuses, &created.Deductions,
		&created.Status, &created.CreatedBy, &created.JoinDate, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Position != nil {
		setParts = append(setParts, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, *req.Position)
		argIdx++
	}
	if req.Department != nil {
		setParts = append(setParts, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *req.Department)
		argIdx++
	}
	if req.BaseSalary != nil {
		setParts = append(setParts, fmt.Sprintf("base_salary = $%d", argIdx))
		args = append(args, *req.BaseSalary)
		argIdx++
	}
	if req.TaxRate != nil {
		setParts = append(setParts, fmt.Sprintf("tax_rate = $%d", argIdx))
		args = append(args, *req.TaxRate)
		argIdx++
	}
	if req.Bonuses != nil {
		setParts = append(setParts, fmt.Sprintf("bonuses = $%d", argIdx))
		args = append(args, *req.Bonuses)
		argIdx++
	}
	if req.Deductions != nil {
		setParts = append(setParts, fmt.Sprintf("deductions = $%d", argIdx))
		args = append(args, *req.Deductions)
		argIdx++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.JoinDate != nil {
		joinDate, _ := validator.IsValidDate(*req.JoinDate)
		setParts = append(setParts, fmt.Sprintf("join_date = $%d", argIdx))
		args = append(args, joinDate.Format(time.DateOnly))
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1
		RETURNING id, name, email, position, department, base_salary, tax_rate,
			bonuses, deductions, status, created_by, join_date, created_at, updated_at
	`, strings.Join(setParts, ", "))

	var updated employee.Employee
	err := q.QueryRow(ctx, query, args...).Scan(
		&updated.ID, &updated.Name, &updated.Email, &updated.Position, &updated.Department,
		&updated.BaseSalary, &updated.TaxRate, &updated.Bonuses, &updated.Deductions,
		&updated.Status, &updated.CreatedBy, &updated.JoinDate, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if strings.Contains(err.Error(), "uk_employees_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
