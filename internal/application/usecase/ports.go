package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

// ProjectTxRunner ejecuta una función dentro de una transacción de BD.
// La creación de un proyecto y la asignación automática de su creador
// como lead deben ser atómicas.
type ProjectTxRunner interface {
	Run(ctx context.Context, fn func(
		projectRepo repository.ProjectRepository,
		assignmentRepo repository.AssignmentRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}

// ReportRow es una fila del reporte de timesheets para exportar.
type ReportRow struct {
	UserName      string
	WeekStart     string
	Status        string
	TotalHours    decimal.Decimal
	BillableHours decimal.Decimal
}

// ReportDocument es el contenido del reporte exportable.
type ReportDocument struct {
	TenantName  string
	GeneratedAt time.Time
	Rows        []ReportRow
}

// PDFGenerator genera el PDF de un reporte de timesheets. La implementación
// concreta (maroto) vive en infraestructura.
type PDFGenerator interface {
	TimesheetReport(doc ReportDocument) ([]byte, error)
}
