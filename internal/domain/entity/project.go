package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de Project.
const (
	ProjectActive    = "active"
	ProjectOnHold    = "on_hold"
	ProjectCompleted = "completed"
	ProjectCancelled = "cancelled"
)

// ValidProjectStatus indica si s es un estado conocido de proyecto.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// Project representa un proyecto del tenant contra el que se registran horas.
// Invariante: todo Task, TimesheetEntry o ProjectAssignment que lo referencie
// debe pertenecer al mismo tenant.
type Project struct {
	ID          string
	TenantID    string
	Name        string
	Description string
	ClientName  string
	Status      string // active, on_hold, completed, cancelled
	ManagerID   *string
	HourlyRate  decimal.Decimal
	IsBillable  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Roles dentro de un proyecto.
const (
	AssignmentMember = "member"
	AssignmentLead   = "lead"
	AssignmentViewer = "viewer"
)

// ProjectAssignment asocia un usuario a un proyecto de su mismo tenant.
type ProjectAssignment struct {
	ID            string
	TenantID      string
	ProjectID     string
	UserID        string
	Role          string // member, lead, viewer
	CanSubmitTime bool
	AssignedBy    *string
	AssignedAt    time.Time
}
