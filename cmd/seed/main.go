package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/David-Smile/cloud-payroll-demo/internal/config"
	"github.com/David-Smile/cloud-payroll-demo/internal/domain/employee"
	"github.com/David-Smile/cloud-payroll-demo/internal/domain/user"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/database"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/password"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/validator"
	"github.com/David-Smile/cloud-payroll-demo/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Seeds an admin account and a sample employee for local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	hasher := password.NewHasher(cfg.Bcrypt.Cost)

	adminEmail := validator.NormalizeEmail(getEnv("SEED_ADMIN_EMAIL", "admin@example.com"))
	adminPassword := getEnv("SEED_ADMIN_PASSWORD", "password123")

	ctx := context.Background()

	if _, err := userRepo.GetByEmail(ctx, adminEmail); err == nil {
		fmt.Println("Admin user already exists:", adminEmail)
		return
	} else if !errors.Is(err, user.ErrUserNotFound) {
		fmt.Println("Error checking admin user:", err)
		os.Exit(1)
	}

	hash, err := hasher.Hash(adminPassword)
	if err != nil {
		fmt.Println("Error hashing password:", err)
		os.Exit(1)
	}

	// Both rows are created atomically; a partial seed is worse than none.
	err = postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := userRepo.Create(txCtx, user.User{
			Name:         "Admin User",
			Email:        adminEmail,
			PasswordHash: hash,
			Role:         user.RoleAdmin,
		}); err != nil {
			return err
		}

		_, err := employeeRepo.Create(txCtx, employee.Employee{
			Name:       "Jane Doe",
			Email:      "jane.doe@example.com",
			Position:   "Software Engineer",
			Department: employee.DepartmentEngineering,
			Status:     employee.StatusActive,
			BaseSalary: decimal.NewFromInt(5000),
			Bonuses:    decimal.NewFromInt(500),
			Deductions: decimal.NewFromInt(200),
			TaxRate:    decimal.NewFromInt(20),
			JoinDate:   time.Now(),
		})
		return err
	})
	if err != nil {
		fmt.Println("Error seeding data:", err)
		os.Exit(1)
	}

	fmt.Println("Seeded admin user:", adminEmail)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
