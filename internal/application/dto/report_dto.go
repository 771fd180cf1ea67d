package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse agregados del tenant para la semana en curso.
type DashboardResponse struct {
	WeekStartDate   string          `json:"week_start_date"`
	TotalHours      decimal.Decimal `json:"total_hours"`
	ActiveProjects  int             `json:"active_projects"`
	TeamMembers     int             `json:"team_members"`
	UtilizationRate decimal.Decimal `json:"utilization_rate"` // horas / (miembros * 40)
}

// AuditLogResponse salida de una fila de bitácora.
type AuditLogResponse struct {
	ID         string    `json:"id"`
	UserID     *string   `json:"user_id,omitempty"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Detail     string    `json:"detail,omitempty"`
	IP         string    `json:"ip,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuditLogListResponse listado paginado de bitácora.
type AuditLogListResponse struct {
	Logs []AuditLogResponse `json:"logs"`
	Page PageResponse       `json:"page"`
}
