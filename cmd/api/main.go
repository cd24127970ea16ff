package main

import (
	"fmt"
	"net/http"

	"github.com/David-Smile/cloud-payroll-demo/internal/config"
	appHTTP "github.com/David-Smile/cloud-payroll-demo/internal/handler/http"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/database"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/jwt"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/password"
	"github.com/David-Smile/cloud-payroll-demo/internal/repository/postgresql"
	serviceAuth "github.com/David-Smile/cloud-payroll-demo/internal/service/auth"
	employeeService "github.com/David-Smile/cloud-payroll-demo/internal/service/employee"
	payrollService "github.com/David-Smile/cloud-payroll-demo/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hasher := password.NewHasher(cfg.Bcrypt.Cost)

	authService := serviceAuth.NewAuthService(userRepo, hasher, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		payrollHandler,
		cfg.App.CORSOrigin,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
