package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Timesheets-api/internal/application/auth"
	"github.com/jhoicas/Timesheets-api/internal/application/timesheet"
	"github.com/jhoicas/Timesheets-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Timesheets-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Timesheets-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Timesheets-api/internal/interfaces/http"
	"github.com/jhoicas/Timesheets-api/pkg/config"
	"github.com/jhoicas/Timesheets-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	sheetRepo := postgres.NewTimesheetRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	authTxRunner := postgres.NewAuthTxRunner(pool)
	projectTxRunner := postgres.NewProjectTxRunner(pool)

	authUC := auth.NewAuthUseCase(tenantRepo, userRepo, authTxRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	tenantUC := usecase.NewTenantUseCase(tenantRepo)
	userUC := usecase.NewUserUseCase(userRepo, tenantRepo, auditRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, assignmentRepo, userRepo, projectTxRunner)
	taskUC := usecase.NewTaskUseCase(taskRepo, projectRepo)
	timesheetUC := timesheet.NewUseCase(sheetRepo, entryRepo, projectRepo, taskRepo, txRunner)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := usecase.NewReportUseCase(reportRepo, sheetRepo, userRepo, tenantRepo, pdfGenerator)
	auditUC := usecase.NewAuditUseCase(auditRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Timesheet Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		TenantUC:    tenantUC,
		UserUC:      userUC,
		ProjectUC:   projectUC,
		TaskUC:      taskUC,
		TimesheetUC: timesheetUC,
		ReportUC:    reportUC,
		AuditUC:     auditUC,
		TenantRepo:  tenantRepo,
		Config:      cfg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
