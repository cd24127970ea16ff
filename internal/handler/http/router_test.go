package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/jwt"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/password"
	"github.com/David-Smile/cloud-payroll-demo/internal/repository/memory"
	serviceAuth "github.com/David-Smile/cloud-payroll-demo/internal/service/auth"
	employeeService "github.com/David-Smile/cloud-payroll-demo/internal/service/employee"
	payrollService "github.com/David-Smile/cloud-payroll-demo/internal/service/payroll"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	userRepo := memory.NewUserRepository()
	employeeRepo := memory.NewEmployeeRepository()
	payrollRepo := memory.NewPayrollRepository(employeeRepo)

	jwtService := jwt.NewJWTService("test-secret-key", "24h")
	hasher := password.NewHasher(password.MinCost)

	authSvc := serviceAuth.NewAuthService(userRepo, hasher, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)

	return NewRouter(
		jwtService,
		NewAuthHandler(authSvc),
		NewEmployeeHandler(employeeSvc),
		NewPayrollHandler(payrollSvc),
		"http://localhost:3000",
	)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func registerAndLogin(t *testing.T, router http.Handler, name, email, role string) string {
	t.Helper()

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var tokenResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tokenResp))
	require.NotEmpty(t, tokenResp.Token)
	return tokenResp.Token
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/employees"},
		{http.MethodGet, "/api/v1/auth/user"},
		{http.MethodGet, "/api/v1/payroll"},
		{http.MethodPost, "/api/v1/payroll/some-id"},
	}
	for _, p := range paths {
		rec, env := doJSON(t, router, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
		require.NotNil(t, env.Error)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/employees", "not.a.token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleEnforcement(t *testing.T) {
	router := newTestRouter(t)
	employeeToken := registerAndLogin(t, router, "Regular Employee", "worker@example.com", "employee")

	// Reads are open to any authenticated user.
	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/employees", employeeToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Mutations are not.
	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/employees", employeeToken, map[string]any{
		"name":       "Jane Doe",
		"email":      "jane.doe@example.com",
		"position":   "Software Engineer",
		"department": "Engineering",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	// Payroll is closed to the employee role entirely.
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/payroll", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Manager can read payroll but not process it.
	managerToken := registerAndLogin(t, router, "Team Manager", "manager@example.com", "manager")

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/payroll", managerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/payroll/some-id", managerToken, map[string]string{"period": "2024-01"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateProfileFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "Frank Black", "frank@example.com", "employee")

	rec, env := doJSON(t, router, http.MethodPut, "/api/v1/auth/profile", token, map[string]string{
		"name":  "Franklin Black",
		"email": "franklin@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var profile struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "Franklin Black", profile.Name)
	assert.Equal(t, "franklin@example.com", profile.Email)

	// Moving onto another user's address conflicts.
	registerAndLogin(t, router, "Grace Hall", "grace@example.com", "employee")
	rec, env = doJSON(t, router, http.MethodPut, "/api/v1/auth/profile", token, map[string]string{
		"email": "grace@example.com",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	// Unauthenticated profile updates are rejected.
	rec, _ = doJSON(t, router, http.MethodPut, "/api/v1/auth/profile", "", map[string]string{"name": "X"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidationReturns400(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "name")
	assert.Contains(t, env.Error.Details, "email")
	assert.Contains(t, env.Error.Details, "password")
}

func TestPayrollFlow(t *testing.T) {
	router := newTestRouter(t)
	adminToken := registerAndLogin(t, router, "Admin User", "admin@example.com", "admin")

	// Create an employee.
	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/employees", adminToken, map[string]any{
		"name":        "Jane Doe",
		"email":       "jane.doe@example.com",
		"position":    "Software Engineer",
		"department":  "Engineering",
		"base_salary": "3000",
		"tax_rate":    "10",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)

	// Process a period.
	rec, env = doJSON(t, router, http.MethodPost, "/api/v1/payroll/"+created.ID, adminToken, map[string]string{
		"period": "2024-02",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var record struct {
		Period      string `json:"period"`
		GrossSalary string `json:"gross_salary"`
		TaxAmount   string `json:"tax_amount"`
		NetSalary   string `json:"net_salary"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &record))
	assert.Equal(t, "2024-02", record.Period)
	assert.Equal(t, "3000", record.GrossSalary)
	assert.Equal(t, "300", record.TaxAmount)
	assert.Equal(t, "2700", record.NetSalary)

	// Same period again conflicts.
	rec, env = doJSON(t, router, http.MethodPost, "/api/v1/payroll/"+created.ID, adminToken, map[string]string{
		"period": "2024-02",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	// Unknown employee maps to not found.
	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/payroll/missing-id", adminToken, map[string]string{
		"period": "2024-02",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The processed record shows up in the listing.
	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/payroll?employee_id="+created.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var records []struct {
		EmployeeID   string  `json:"employee_id"`
		EmployeeName *string `json:"employee_name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, created.ID, records[0].EmployeeID)
	require.NotNil(t, records[0].EmployeeName)
	assert.Equal(t, "Jane Doe", *records[0].EmployeeName)
}

func TestDuplicateEmployeeEmailConflicts(t *testing.T) {
	router := newTestRouter(t)
	hrToken := registerAndLogin(t, router, "HR Person", "hr@example.com", "hr")

	body := map[string]any{
		"name":        "Jane Doe",
		"email":       "jane.doe@example.com",
		"position":    "Software Engineer",
		"department":  "Engineering",
		"base_salary": "5000",
		"tax_rate":    "20",
	}
	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/employees", hrToken, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/employees", hrToken, body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}
