package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTaskRequest entrada para crear una tarea.
type CreateTaskRequest struct {
	ProjectID      string          `json:"project_id" validate:"required,uuid"`
	Name           string          `json:"name" validate:"required,min=1,max=255"`
	Description    string          `json:"description"`
	AssignedTo     *string         `json:"assigned_to" validate:"omitempty,uuid"`
	Priority       string          `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	DueDate        *time.Time      `json:"due_date"`
	IsBillable     *bool           `json:"is_billable"`
}

// UpdateTaskRequest entrada para actualizar una tarea. Punteros: nil = no modificar.
type UpdateTaskRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description    *string          `json:"description"`
	AssignedTo     *string          `json:"assigned_to" validate:"omitempty,uuid"`
	Status         *string          `json:"status" validate:"omitempty,oneof=open in_progress completed cancelled"`
	Priority       *string          `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	EstimatedHours *decimal.Decimal `json:"estimated_hours"`
	DueDate        *time.Time       `json:"due_date"`
	IsBillable     *bool            `json:"is_billable"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID             string          `json:"id"`
	TenantID       string          `json:"tenant_id"`
	ProjectID      string          `json:"project_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	AssignedTo     *string         `json:"assigned_to,omitempty"`
	Status         string          `json:"status"`
	Priority       string          `json:"priority"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	IsBillable     bool            `json:"is_billable"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TaskListResponse listado paginado de tareas.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Page  PageResponse   `json:"page"`
}
