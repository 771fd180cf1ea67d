package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas para el panel de control.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de consultas agregadas.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// DashboardStats calcula en una sola consulta las horas de la semana, los
// proyectos activos y los miembros activos del tenant.
func (r *ReportRepo) DashboardStats(tenantID string, weekStart time.Time) (*repository.DashboardStats, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total_hours) FROM timesheets
				WHERE tenant_id = $1 AND week_start_date = $2), 0) AS total_hours,
			(SELECT COUNT(*) FROM projects
				WHERE tenant_id = $1 AND status = 'active') AS active_projects,
			(SELECT COUNT(*) FROM users
				WHERE tenant_id = $1 AND status = 'active') AS team_members`
	var stats repository.DashboardStats
	err := r.q.QueryRow(context.Background(), query, tenantID, weekStart).Scan(
		&stats.TotalHours, &stats.ActiveProjects, &stats.TeamMembers,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}
