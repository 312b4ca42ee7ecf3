package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"

	"github.com/jpkn-sabah/attendance-backend-go/internal/config"
	appHTTP "github.com/jpkn-sabah/attendance-backend-go/internal/handler/http"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/database"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/llm"
	"github.com/jpkn-sabah/attendance-backend-go/internal/repository/postgresql"
	chatService "github.com/jpkn-sabah/attendance-backend-go/internal/service/chat"
	reportService "github.com/jpkn-sabah/attendance-backend-go/internal/service/report"
	"github.com/jpkn-sabah/attendance-backend-go/internal/service/resolver"
	"github.com/jpkn-sabah/attendance-backend-go/internal/service/seed"
	settingsService "github.com/jpkn-sabah/attendance-backend-go/internal/service/settings"
	statsService "github.com/jpkn-sabah/attendance-backend-go/internal/service/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.App.Env),
	)

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		logger.Error("connecting to database failed", "error", err)
		return
	}
	defer db.Close()

	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		logger.Error("ensuring schema failed", "error", err)
		return
	}

	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	settingsStore := postgresql.NewSettingsStore(db)

	llmClient := llm.NewClient(cfg.LLM.RequestTimeout)

	resolverSvc := resolver.NewResolver(departmentRepo, employeeRepo)
	statsSvc := statsService.NewStatsService(departmentRepo, employeeRepo, attendanceRepo, logger)
	settingsSvc := settingsService.NewSettingsService(settingsStore, llmClient, logger)
	classifier := chatService.NewClassifier(resolverSvc, statsSvc, departmentRepo, employeeRepo, attendanceRepo, logger)
	chatSvc := chatService.NewChatService(classifier, departmentRepo, employeeRepo, statsSvc, settingsSvc, llmClient, logger)
	reportSvc := reportService.NewReportService(statsSvc, departmentRepo, logger)
	runner := seed.NewRunner(departmentRepo, employeeRepo, attendanceRepo, settingsStore, logger)

	// Seed in the background; the router's gate answers 503 until done.
	go func() {
		status := runner.Run(context.Background())
		if status.State == seed.StateFailed {
			logger.Error("initial seeding failed", "phase", status.FailedPhase, "error", status.Error)
		}
	}()

	router := appHTTP.NewRouter(logger, func() bool {
		return runner.Status().State == seed.StateCompleted
	}, appHTTP.Handlers{
		Department: appHTTP.NewDepartmentHandler(departmentRepo, statsSvc, resolverSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeRepo, attendanceRepo, resolverSvc),
		Stats:      appHTTP.NewStatsHandler(statsSvc),
		Chat:       appHTTP.NewChatHandler(chatSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Seed:       appHTTP.NewSeedHandler(runner),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server starting", "addr", port)
	if err := http.ListenAndServe(port, router); err != nil {
		logger.Error("server error", "error", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
