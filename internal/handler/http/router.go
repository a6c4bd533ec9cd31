package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/atlashr/timecore-backend-go/internal/handler/http/middleware"
	"github.com/atlashr/timecore-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env     string
	Version string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	overtimeHandler OvertimeHandler,
	recoveryHandler RecoveryHandler,
	scheduleHandler ScheduleHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timecore"),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Declare)
				r.Get("/", attendanceHandler.List)
				r.Get("/{id}", attendanceHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Put("/{id}/resolve", attendanceHandler.Resolve)
				})
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", leaveHandler.ListTypes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", leaveHandler.CreateType)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/", leaveHandler.List)
				r.Get("/{id}", leaveHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Put("/{id}/approve", leaveHandler.Approve)
					r.Put("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/overtime-requests", func(r chi.Router) {
				r.Post("/", overtimeHandler.Create)
				r.Get("/", overtimeHandler.List)
				r.Get("/{id}", overtimeHandler.Get)
				r.Put("/{id}/cancel", overtimeHandler.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Put("/{id}/approve", overtimeHandler.Approve)
					r.Put("/{id}/reject", overtimeHandler.Reject)
				})
			})

			r.Route("/recovery-periods", func(r chi.Router) {
				r.Get("/", recoveryHandler.ListPeriods)
				r.Get("/{id}/balance", recoveryHandler.GetBalance)
				r.Get("/{id}/declarations", recoveryHandler.ListDeclarations)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", recoveryHandler.CreatePeriod)
				})
			})

			r.Route("/recovery-declarations", func(r chi.Router) {
				r.Post("/", recoveryHandler.Declare)
				r.Put("/{id}", recoveryHandler.UpdateDeclaration)
			})

			r.Route("/work-schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
				r.Get("/{id}", scheduleHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", scheduleHandler.Create)
					r.Put("/{id}/activate", scheduleHandler.Activate)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/prime-exemptions", payrollHandler.ComputeExemptions)
				r.Get("/employee-primes/{employeeID}", payrollHandler.ListEmployeePrimes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/prime-types", payrollHandler.CreatePrimeType)
					r.Get("/prime-types", payrollHandler.ListPrimeTypes)
					r.Post("/employee-primes", payrollHandler.AssignPrime)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return r
}
