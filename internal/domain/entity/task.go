package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados y prioridades válidos de Task.
const (
	TaskOpen       = "open"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
	TaskCancelled  = "cancelled"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ValidTaskStatus indica si s es un estado conocido de tarea.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskOpen, TaskInProgress, TaskCompleted, TaskCancelled:
		return true
	}
	return false
}

// ValidPriority indica si s es una prioridad conocida.
func ValidPriority(s string) bool {
	switch s {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task representa una tarea dentro de un proyecto del tenant.
type Task struct {
	ID             string
	TenantID       string
	ProjectID      string
	Name           string
	Description    string
	AssignedTo     *string
	Status         string // open, in_progress, completed, cancelled
	Priority       string // low, medium, high, urgent
	EstimatedHours decimal.Decimal
	DueDate        *time.Time
	IsBillable     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
