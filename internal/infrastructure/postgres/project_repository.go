package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Timesheets-api/internal/domain"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)
var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

const projectColumns = `id, tenant_id, name, description, client_name, status, manager_id, hourly_rate, is_billable, created_at, updated_at`

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador de persistencia para proyectos. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(p *entity.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.TenantID, p.Name, p.Description, p.ClientName, p.Status, p.ManagerID,
		p.HourlyRate, p.IsBillable, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID dentro del tenant. Retorna (nil, nil) si no existe.
func (r *ProjectRepo) GetByID(id, tenantID string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND tenant_id = $2`
	p, err := scanProject(r.q.QueryRow(context.Background(), query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// ListByTenant lista proyectos del tenant con paginación.
func (r *ProjectRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un proyecto del tenant.
func (r *ProjectRepo) Update(p *entity.Project) error {
	query := `
		UPDATE projects SET name = $3, description = $4, client_name = $5, status = $6,
			manager_id = $7, hourly_rate = $8, is_billable = $9, updated_at = $10
		WHERE id = $1 AND tenant_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.TenantID, p.Name, p.Description, p.ClientName, p.Status, p.ManagerID,
		p.HourlyRate, p.IsBillable, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete elimina un proyecto del tenant. Retorna false si no había fila.
func (r *ProjectRepo) Delete(id, tenantID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM projects WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(
		&p.ID, &p.TenantID, &p.Name, &p.Description, &p.ClientName, &p.Status, &p.ManagerID,
		&p.HourlyRate, &p.IsBillable, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const assignmentColumns = `id, tenant_id, project_id, user_id, role, can_submit_time, assigned_by, assigned_at`

// AssignmentRepo implementación del puerto AssignmentRepository sobre PostgreSQL.
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador de persistencia para asignaciones.
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

// Create persiste una asignación. (project_id, user_id) tiene constraint único.
func (r *AssignmentRepo) Create(a *entity.ProjectAssignment) error {
	query := `
		INSERT INTO project_assignments (` + assignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.TenantID, a.ProjectID, a.UserID, a.Role, a.CanSubmitTime, a.AssignedBy, a.AssignedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// GetByProjectAndUser obtiene la asignación de un usuario a un proyecto. Retorna (nil, nil) si no existe.
func (r *AssignmentRepo) GetByProjectAndUser(projectID, userID, tenantID string) (*entity.ProjectAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM project_assignments WHERE project_id = $1 AND user_id = $2 AND tenant_id = $3`
	var a entity.ProjectAssignment
	err := r.q.QueryRow(context.Background(), query, projectID, userID, tenantID).Scan(
		&a.ID, &a.TenantID, &a.ProjectID, &a.UserID, &a.Role, &a.CanSubmitTime, &a.AssignedBy, &a.AssignedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &a, nil
}

// ListByProject lista las asignaciones de un proyecto del tenant.
func (r *AssignmentRepo) ListByProject(projectID, tenantID string) ([]*entity.ProjectAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM project_assignments WHERE project_id = $1 AND tenant_id = $2 ORDER BY assigned_at`
	rows, err := r.q.Query(context.Background(), query, projectID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProjectAssignment
	for rows.Next() {
		var a entity.ProjectAssignment
		if err := rows.Scan(&a.ID, &a.TenantID, &a.ProjectID, &a.UserID, &a.Role, &a.CanSubmitTime, &a.AssignedBy, &a.AssignedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
