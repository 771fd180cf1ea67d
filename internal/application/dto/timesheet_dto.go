package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimesheetResponse salida de un timesheet.
type TimesheetResponse struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenant_id"`
	UserID          string          `json:"user_id"`
	WeekStartDate   string          `json:"week_start_date"` // YYYY-MM-DD
	WeekEndDate     string          `json:"week_end_date"`
	Status          string          `json:"status"`
	TotalHours      decimal.Decimal `json:"total_hours"`
	BillableHours   decimal.Decimal `json:"billable_hours"`
	SubmittedAt     *time.Time      `json:"submitted_at,omitempty"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TimesheetWithEntriesResponse timesheet con sus entradas.
type TimesheetWithEntriesResponse struct {
	TimesheetResponse
	Entries []EntryResponse `json:"entries"`
}

// CreateEntryRequest entrada para añadir una línea al timesheet.
// Solo se admite mientras el timesheet padre está en draft o rejected.
type CreateEntryRequest struct {
	TimesheetID string          `json:"timesheet_id" validate:"required,uuid"`
	ProjectID   string          `json:"project_id" validate:"required,uuid"`
	TaskID      *string         `json:"task_id" validate:"omitempty,uuid"`
	EntryDate   string          `json:"entry_date" validate:"required"` // YYYY-MM-DD
	Hours       decimal.Decimal `json:"hours" validate:"required"`
	Description string          `json:"description"`
	IsBillable  *bool           `json:"is_billable"`
}

// UpdateEntryRequest entrada para modificar una línea. Punteros: nil = no modificar.
type UpdateEntryRequest struct {
	ProjectID   *string          `json:"project_id" validate:"omitempty,uuid"`
	TaskID      *string          `json:"task_id" validate:"omitempty,uuid"`
	EntryDate   *string          `json:"entry_date"`
	Hours       *decimal.Decimal `json:"hours"`
	Description *string          `json:"description"`
	IsBillable  *bool            `json:"is_billable"`
}

// EntryResponse salida de una línea de timesheet.
type EntryResponse struct {
	ID          string          `json:"id"`
	TimesheetID string          `json:"timesheet_id"`
	ProjectID   string          `json:"project_id"`
	TaskID      *string         `json:"task_id,omitempty"`
	EntryDate   string          `json:"entry_date"`
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description,omitempty"`
	IsBillable  bool            `json:"is_billable"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RejectRequest motivo opcional del rechazo.
type RejectRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=1000"`
}

// TimesheetListResponse listado de timesheets.
type TimesheetListResponse struct {
	Timesheets []TimesheetResponse `json:"timesheets"`
	Page       PageResponse        `json:"page"`
}
