package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/jpkn-sabah/attendance-backend-go/internal/handler/http/middleware"
)

type Handlers struct {
	Department DepartmentHandler
	Employee   EmployeeHandler
	Stats      StatsHandler
	Chat       ChatHandler
	Report     ReportHandler
	Settings   SettingsHandler
	Seed       SeedHandler
}

func NewRouter(logger *slog.Logger, seeded func() bool, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/seed", func(r chi.Router) {
			r.Get("/status", h.Seed.GetStatus)
			r.Post("/retry", h.Seed.Retry)
		})

		// Everything below is meaningless until the store is seeded.
		r.Group(func(r chi.Router) {
			r.Use(middleware.SeedGate(seeded))

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.ListDepartments)
				r.Get("/search", h.Department.SearchDepartments)
				r.Get("/{code}", h.Department.GetDepartment)
				r.Get("/{code}/ancestry", h.Department.GetAncestry)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/search", h.Employee.SearchEmployees)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)
					r.Get("/attendance", h.Employee.GetAttendanceHistory)
					r.Get("/attendance/today", h.Employee.GetTodayAttendance)
					r.Get("/leave", h.Employee.GetLeaveRecords)
				})
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/employees", h.Stats.GetEmployeeStatistics)
				r.Get("/attendance/today", h.Stats.GetTodayAttendance)
			})

			r.Post("/chat", h.Chat.Ask)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/attendance.pdf", h.Report.DownloadPDF)
				r.Get("/attendance.xlsx", h.Report.DownloadXLSX)
			})

			r.Route("/settings/llms", func(r chi.Router) {
				r.Get("/", h.Settings.ListLLMConfigs)
				r.Post("/", h.Settings.CreateLLMConfig)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", h.Settings.UpdateLLMConfig)
					r.Delete("/", h.Settings.DeleteLLMConfig)
					r.Post("/default", h.Settings.SetDefaultLLMConfig)
					r.Post("/test", h.Settings.TestLLMConfig)
				})
			})
		})
	})

	return r
}
