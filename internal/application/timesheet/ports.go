package timesheet

import (
	"context"

	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre la mutación de
// entradas, el recálculo de totales del padre y la fila de auditoría.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sheetRepo repository.TimesheetRepository,
		entryRepo repository.EntryRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
