package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/database"
)

var (
	testDB     *database.DB
	setupOnce  sync.Once
	setupError error
)

const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uk_users_email UNIQUE (email)
	);

	CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		position VARCHAR(255) NOT NULL,
		department VARCHAR(64) NOT NULL,
		base_salary NUMERIC(12,2) NOT NULL DEFAULT 0,
		tax_rate NUMERIC(5,2) NOT NULL DEFAULT 0,
		bonuses NUMERIC(12,2) NOT NULL DEFAULT 0,
		deductions NUMERIC(12,2) NOT NULL DEFAULT 0,
		status VARCHAR(32) NOT NULL,
		created_by VARCHAR(64) NOT NULL DEFAULT '',
		join_date DATE NOT NULL DEFAULT CURRENT_DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uk_employees_email UNIQUE (email)
	);

	CREATE TABLE IF NOT EXISTS payroll_records (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		period VARCHAR(7) NOT NULL,
		gross_salary NUMERIC(12,2) NOT NULL,
		tax_amount NUMERIC(12,2) NOT NULL,
		net_salary NUMERIC(12,2) NOT NULL,
		bonuses NUMERIC(12,2) NOT NULL DEFAULT 0,
		deductions NUMERIC(12,2) NOT NULL DEFAULT 0,
		tax_rate_applied NUMERIC(5,2) NOT NULL DEFAULT 0,
		processed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uk_payroll_records_employee_period UNIQUE (employee_id, period)
	);
`

// setupTestDB connects to the database named by TEST_DATABASE_URL and makes
// sure the schema exists. Tests calling it are skipped when the variable is
// not set.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration tests")
	}

	setupOnce.Do(func() {
		db, err := database.NewPostgreSQLDB(dsn)
		if err != nil {
			setupError = fmt.Errorf("connect to test database: %w", err)
			return
		}
		if _, err := db.Exec(context.Background(), schema); err != nil {
			setupError = fmt.Errorf("create schema: %w", err)
			return
		}
		testDB = db
	})
	if setupError != nil {
		t.Fatal(setupError)
	}

	return testDB
}

// truncateAll resets every table between tests.
func truncateAll(t *testing.T, db *database.DB) {
	t.Helper()

	for _, table := range []string{"payroll_records", "employees", "users"} {
		if _, err := db.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}
}
