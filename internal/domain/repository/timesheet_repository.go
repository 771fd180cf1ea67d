package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
)

// TimesheetRepository define el puerto de persistencia para Timesheet (DIP).
//
// Las transiciones de estado (Submit/Approve/Reject/Lock) son UPDATEs
// condicionales que solo aplican si el estado actual coincide con el
// pre-estado esperado; retornan false cuando ninguna fila cambió. Eso
// serializa submits/approvals concurrentes sin locking explícito: de dos
// decisiones simultáneas sobre el mismo timesheet, exactamente una gana.
type TimesheetRepository interface {
	Create(ts *entity.Timesheet) error
	GetByID(id, tenantID string) (*entity.Timesheet, error)
	// GetForWeek retorna (nil, nil) si el usuario aún no tiene timesheet esa semana.
	GetForWeek(userID, tenantID string, weekStart time.Time) (*entity.Timesheet, error)
	ListByUser(userID, tenantID string, limit int) ([]*entity.Timesheet, error)
	// ListByTenant filtra opcionalmente por status ("" = todos).
	ListByTenant(tenantID, status string, limit, offset int) ([]*entity.Timesheet, error)
	UpdateTotals(id, tenantID string, total, billable decimal.Decimal) error

	// Submit: draft|rejected -> submitted. Fija submitted_at y los totales recalculados.
	Submit(id, tenantID string, total, billable decimal.Decimal, at time.Time) (bool, error)
	// Approve: submitted -> approved. Registra aprobador y momento.
	Approve(id, tenantID, approverID string, at time.Time) (bool, error)
	// Reject: submitted -> rejected. Registra aprobador, momento y motivo.
	Reject(id, tenantID, approverID, reason string, at time.Time) (bool, error)
	// Lock: approved -> locked.
	Lock(id, tenantID string, at time.Time) (bool, error)
}

// EntryRepository define el puerto de persistencia para TimesheetEntry (DIP).
type EntryRepository interface {
	Create(e *entity.TimesheetEntry) error
	GetByID(id, tenantID string) (*entity.TimesheetEntry, error)
	ListByTimesheet(timesheetID, tenantID string) ([]*entity.TimesheetEntry, error)
	Update(e *entity.TimesheetEntry) error
	Delete(id, tenantID string) (bool, error)
}
