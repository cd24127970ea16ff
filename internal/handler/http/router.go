package http

import (
	"log/slog"
	"os"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/user"
	"github.com/David-Smile/cloud-payroll-demo/internal/handler/http/middleware"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(jwtService jwt.Service, authHandler AuthHandler, employeeHandler EmployeeHandler, payrollHandler PayrollHandler, corsOrigin string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "cloud-payroll-demo"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Get("/user", authHandler.CurrentUser)
				r.Put("/profile", authHandler.UpdateProfile)
				r.Put("/password", authHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.GetByID)

				// Admin and HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {

				// Admin, finance and manager can read
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleFinance, user.RoleManager))
					r.Get("/", payrollHandler.List)
				})

				// Admin and finance only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleFinance))
					r.Post("/{employeeId}", payrollHandler.Process)
				})
			})
		})
	})

	return r
}
