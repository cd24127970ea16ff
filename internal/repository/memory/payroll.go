package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/payroll"
	"github.com/google/uuid"
)

type PayrollRepository struct {
	mu      sync.RWMutex
	records map[string]payroll.PayrollRecord
	// byPair indexes record ids by employee_id+"|"+period; the mutex makes
	// the existence check and insert one atomic unit, mirroring the unique
	// constraint the postgresql repository relies on.
	byPair map[string]string

	employees *EmployeeRepository
}

// NewPayrollRepository returns a payroll store. The employee repository is
// optional and only used to resolve employee identity on reads.
func NewPayrollRepository(employees *EmployeeRepository) *PayrollRepository {
	return &PayrollRepository{
		records:   make(map[string]payroll.PayrollRecord),
		byPair:    make(map[string]string),
		employees: employees,
	}
}

func pairKey(employeeID, period string) string {
	return employeeID + "|" + period
}

func (r *PayrollRepository) Create(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(record.EmployeeID, record.Period)
	if _, exists := r.byPair[key]; exists {
		return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyProcessed
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	r.records[record.ID] = record
	r.byPair[key] = record.ID

	return record, nil
}

func (r *PayrollRepository) GetByEmployeePeriod(_ context.Context, employeeID, period string) (payroll.PayrollRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPair[pairKey(employeeID, period)]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}

	rec := r.records[id]
	r.resolveEmployee(&rec)
	return rec, nil
}

func (r *PayrollRepository) List(_ context.Context, filter payroll.ListFilter) ([]payroll.PayrollRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []payroll.PayrollRecord
	for _, rec := range r.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Period != nil && rec.Period != *filter.Period {
			continue
		}
		r.resolveEmployee(&rec)
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ProcessedAt.After(records[j].ProcessedAt)
	})

	return records, nil
}

func (r *PayrollRepository) resolveEmployee(rec *payroll.PayrollRecord) {
	if r.employees == nil {
		return
	}
	e, err := r.employees.GetByID(context.Background(), rec.EmployeeID)
	if err != nil {
		return
	}
	rec.EmployeeName = &e.Name
	rec.EmployeeEmail = &e.Email
}
