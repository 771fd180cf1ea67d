package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un Timesheet.
//
//	draft ──submit──▶ submitted ──approve──▶ approved ──lock──▶ locked
//	  ▲                   │
//	  │                reject
//	  └── (implícito) ◀───┘ rejected
//
// No existe transición formal rejected→draft: tras un rechazo el empleado
// recupera el control implícitamente (puede editar entradas y re-enviar).
const (
	SheetDraft     = "draft"
	SheetSubmitted = "submitted"
	SheetApproved  = "approved"
	SheetRejected  = "rejected"
	SheetLocked    = "locked"
)

// Timesheet agrega las horas de un usuario para una semana (lunes a domingo).
// Único por (user_id, week_start_date). Se crea perezosamente en draft al
// primer acceso a la semana.
type Timesheet struct {
	ID              string
	TenantID        string
	UserID          string
	WeekStartDate   time.Time // siempre lunes, normalizado con WeekStart
	WeekEndDate     time.Time // domingo de la misma semana
	Status          string    // draft, submitted, approved, rejected, locked
	TotalHours      decimal.Decimal
	BillableHours   decimal.Decimal
	SubmittedAt     *time.Time
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsEditable indica si las entradas del timesheet admiten mutación.
// Guardia única del servicio: solo draft y rejected son editables; nunca se
// mutan entradas de un timesheet enviado, aprobado o bloqueado.
func (t *Timesheet) IsEditable() bool {
	return t != nil && (t.Status == SheetDraft || t.Status == SheetRejected)
}

// TimesheetEntry es una asignación de horas a un proyecto/tarea en una fecha
// concreta dentro del timesheet padre.
type TimesheetEntry struct {
	ID          string
	TenantID    string
	TimesheetID string
	ProjectID   string
	TaskID      *string
	EntryDate   time.Time
	Hours       decimal.Decimal
	Description string
	IsBillable  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WeekStart normaliza una fecha al lunes de su semana, en UTC y sin hora.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(d.Weekday()) + 6) % 7 // lunes=0 ... domingo=6
	return d.AddDate(0, 0, -offset)
}

// WeekEnd devuelve el domingo de la semana que empieza en start.
func WeekEnd(start time.Time) time.Time {
	return start.AddDate(0, 0, 6)
}

// SumEntries recalcula las horas totales y facturables desde las entradas.
// Siempre se recalcula desde cero, nunca se parchea incrementalmente, para
// que el total del padre no derive respecto a la suma de sus entradas.
func SumEntries(entries []*TimesheetEntry) (total, billable decimal.Decimal) {
	total = decimal.Zero
	billable = decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Hours)
		if e.IsBillable {
			billable = billable.Add(e.Hours)
		}
	}
	return total, billable
}
