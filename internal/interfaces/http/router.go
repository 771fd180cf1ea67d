package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Timesheets-api/internal/application/auth"
	"github.com/jhoicas/Timesheets-api/internal/application/timesheet"
	"github.com/jhoicas/Timesheets-api/internal/application/usecase"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
	"github.com/jhoicas/Timesheets-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	TenantUC    *usecase.TenantUseCase
	UserUC      *usecase.UserUseCase
	ProjectUC   *usecase.ProjectUseCase
	TaskUC      *usecase.TaskUseCase
	TimesheetUC *timesheet.UseCase
	ReportUC    *usecase.ReportUseCase
	AuditUC     *usecase.AuditUseCase
	TenantRepo  repository.TenantRepository
	Config      *config.Config
}

// Router registra las rutas de la API. Toda petición pasa por el resolutor de
// tenant; las rutas protegidas exigen además Bearer Token, y las
// administrativas un rol concreto.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", TenantResolver(deps.TenantRepo, deps.Config.App.BaseDomain))

	// Auth (público; login con rate limit por IP)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", LoginRateLimiter(deps.Config.Auth.LoginRatePerSecond, deps.Config.Auth.LoginBurst), authHandler.Login)
	api.Post("/register", authHandler.Register)

	// Validación pública de slug (onboarding)
	tenantHandler := NewTenantHandler(deps.TenantUC)
	api.Get("/tenant/validate/:slug", tenantHandler.ValidateSlug)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Config.JWT.Secret))

	protected.Post("/logout", authHandler.Logout)
	protected.Get("/user", authHandler.Me)

	// Tenant propio
	protected.Get("/tenant", tenantHandler.GetCurrent)
	protected.Put("/tenant", RequireRole(entity.RoleAdmin, entity.RoleOwner), tenantHandler.Update)

	// Usuarios (administración)
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/users", RequireRole(entity.RoleManager, entity.RoleAdmin, entity.RoleOwner), userHandler.List)
	protected.Put("/users/:id", RequireRole(entity.RoleAdmin, entity.RoleOwner), userHandler.Update)
	protected.Post("/invite", RequireRole(entity.RoleManager, entity.RoleAdmin, entity.RoleOwner), userHandler.Invite)

	// Proyectos
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects := protected.Group("/projects")
	projects.Get("/", projectHandler.List)
	projects.Post("/", RequireRole(entity.RoleManager, entity.RoleAdmin, entity.RoleOwner), projectHandler.Create)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", RequireRole(entity.RoleManager, entity.RoleAdmin, entity.RoleOwner), projectHandler.Update)
	projects.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleOwner), projectHandler.Delete)
	projects.Get("/:id/assignments", projectHandler.Assignments)
	projects.Post("/:id/assignments", RequireRole(entity.RoleManager, entity.RoleAdmin, entity.RoleOwner), projectHandler.Assign)

	// Tareas
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks := protected.Group("/tasks")
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", RequireRole(entity.RoleManager, entity.RoleAdmin, entity.RoleOwner), taskHandler.Create)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", RequireRole(entity.RoleManager, entity.RoleAdmin, entity.RoleOwner), taskHandler.Update)
	tasks.Delete("/:id", RequireRole(entity.RoleManager, entity.RoleAdmin, entity.RoleOwner), taskHandler.Delete)
	projects.Get("/:id/tasks", taskHandler.ListByProject)

	// Timesheets
	tsHandler := NewTimesheetHandler(deps.TimesheetUC)
	sheets := protected.Group("/timesheets")
	sheets.Get("/", tsHandler.List)
	sheets.Get("/week/:date", tsHandler.Week)
	sheets.Get("/:id", tsHandler.GetByID)
	sheets.Post("/:id/submit", tsHandler.Submit)
	sheets.Post("/:id/approve", RequireRole(entity.RoleManager, entity.RoleAdmin, entity.RoleOwner), tsHandler.Approve)
	sheets.Post("/:id/reject", RequireRole(entity.RoleManager, entity.RoleAdmin, entity.RoleOwner), tsHandler.Reject)
	sheets.Post("/:id/lock", RequireRole(entity.RoleAdmin, entity.RoleOwner), tsHandler.Lock)

	protected.Get("/approvals", RequireRole(entity.RoleManager, entity.RoleAdmin, entity.RoleOwner), tsHandler.Approvals)

	// Entradas de horas
	entries := protected.Group("/timesheet-entries")
	entries.Post("/", tsHandler.AddEntry)
	entries.Put("/:id", tsHandler.UpdateEntry)
	entries.Delete("/:id", tsHandler.DeleteEntry)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC, deps.TimesheetUC)
	reports := protected.Group("/reports", RequireRole(entity.RoleManager, entity.RoleAdmin, entity.RoleOwner))
	reports.Get("/timesheets", reportHandler.Timesheets)
	reports.Get("/timesheets/pdf", reportHandler.TimesheetsPDF)
	reports.Get("/dashboard", reportHandler.Dashboard)

	// Bitácora
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit-logs", RequireRole(entity.RoleAdmin, entity.RoleOwner), auditHandler.List)
}
