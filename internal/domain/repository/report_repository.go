package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats agregados del tenant para el panel de control.
type DashboardStats struct {
	TotalHours     decimal.Decimal // horas registradas en la semana
	ActiveProjects int
	TeamMembers    int
}

// ReportRepository define el puerto de consultas agregadas (DIP).
type ReportRepository interface {
	// DashboardStats calcula los agregados de la semana que empieza en weekStart.
	DashboardStats(tenantID string, weekStart time.Time) (*DashboardStats, error)
}
