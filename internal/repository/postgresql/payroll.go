package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/payroll"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// Create inserts a new payroll record. The uk_payroll_records_employee_period
// unique constraint on (employee_id, period) is the atomic unit that keeps two
// concurrent inserts for the same pair from both succeeding.
func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, period, gross_salary, tax_amount, net_salary,
			bonuses, deductions, tax_rate_applied, processed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, employee_id, period, gross_salary, tax_amount, net_salary,
			bonuses, deductions, tax_rate_applied, processed_at
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Period, record.GrossSalary, record.TaxAmount,
		record.NetSalary, record.Bonuses, record.Deductions, record.TaxRateApplied, record.ProcessedAt,
	).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Period, &rec.GrossSalary, &rec.TaxAmount,
		&rec.NetSalary, &rec.Bonuses, &rec.Deductions, &rec.TaxRateApplied, &rec.ProcessedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_records_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyProcessed
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) GetByEmployeePeriod(ctx context.Context, employeeID, period string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.employee_id, pr.period, pr.gross_salary, pr.tax_amount, pr.net_salary,
			   pr.bonuses, pr.deductions, pr.tax_rate_applied, pr.processed_at,
			   e.name AS employee_name, e.email AS employee_email
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.employee_id = $1 AND pr.period = $2
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, employeeID, period).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Period, &rec.GrossSalary, &rec.TaxAmount, &rec.NetSalary,
		&rec.Bonuses, &rec.Deductions, &rec.TaxRateApplied, &rec.ProcessedAt,
		&rec.EmployeeName, &rec.EmployeeEmail,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.employee_id, pr.period, pr.gross_salary, pr.tax_amount, pr.net_salary,
			   pr.bonuses, pr.deductions, pr.tax_rate_applied, pr.processed_at,
			   e.name AS employee_name, e.email AS employee_email
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
	`
	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("pr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Period != nil {
		conditions = append(conditions, fmt.Sprintf("pr.period = $%d", argIdx))
		args = append(args, *filter.Period)
		argIdx++
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY pr.processed_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Period, &rec.GrossSalary, &rec.TaxAmount, &rec.NetSalary,
			&rec.Bonuses, &rec.Deductions, &rec.TaxRateApplied, &rec.ProcessedAt,
			&rec.EmployeeName, &rec.EmployeeEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
