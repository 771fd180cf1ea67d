package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest entrada para crear un proyecto.
// El tenant_id NUNCA viene del cliente: se estampa desde el token.
type CreateProjectRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	Description string          `json:"description" validate:"omitempty"`
	ClientName  string          `json:"client_name" validate:"omitempty,max=255"`
	ManagerID   *string         `json:"manager_id" validate:"omitempty,uuid"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	IsBillable  *bool           `json:"is_billable"`
}

// UpdateProjectRequest entrada para actualizar un proyecto. Punteros: nil = no modificar.
type UpdateProjectRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description"`
	ClientName  *string          `json:"client_name" validate:"omitempty,max=255"`
	Status      *string          `json:"status" validate:"omitempty,oneof=active on_hold completed cancelled"`
	ManagerID   *string          `json:"manager_id" validate:"omitempty,uuid"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate"`
	IsBillable  *bool            `json:"is_billable"`
}

// ProjectResponse salida de un proyecto.
type ProjectResponse struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	ClientName  string          `json:"client_name,omitempty"`
	Status      string          `json:"status"`
	ManagerID   *string         `json:"manager_id,omitempty"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	IsBillable  bool            `json:"is_billable"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProjectListResponse listado paginado de proyectos.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Page     PageResponse      `json:"page"`
}

// AssignUserRequest entrada para asignar un usuario a un proyecto.
type AssignUserRequest struct {
	UserID        string `json:"user_id" validate:"required,uuid"`
	Role          string `json:"role" validate:"omitempty,oneof=member lead viewer"`
	CanSubmitTime *bool  `json:"can_submit_time"`
}

// AssignmentResponse salida de una asignación.
type AssignmentResponse struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	UserID        string    `json:"user_id"`
	Role          string    `json:"role"`
	CanSubmitTime bool      `json:"can_submit_time"`
	AssignedBy    *string   `json:"assigned_by,omitempty"`
	AssignedAt    time.Time `json:"assigned_at"`
}
